package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldSuccess   = "success"

	FieldPeriod        = "period"
	FieldReferenceTime = "reference_time"
	FieldSegmentStart  = "segment_start"
	FieldSegmentEnd    = "segment_end"
	FieldRowCount      = "row_count"
	FieldPage          = "page"
	FieldPath          = "path"
	FieldSheet         = "sheet"
	FieldCurrency      = "currency"
	FieldSymbol        = "symbol"
	FieldURL           = "url"
	FieldDuration      = "duration_ms"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentLedger   = "ledger"
	ComponentSettings = "settings"
	ComponentMarket   = "market"
	ComponentReport   = "report"
	ComponentArchive  = "archive"
	ComponentAMQP     = "amqp"
	ComponentCLI      = "cli"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpFilter   = "filter"
	OpResolve  = "resolve_segment"
	OpAssemble = "assemble"
	OpFetch    = "fetch"
	OpWrite    = "write"
	OpArchive  = "archive"
	OpPublish  = "publish"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
