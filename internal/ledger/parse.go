package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"finreport/internal/core"
	"finreport/internal/log"
)

// Column headers of the operations export. The bank ships them in Russian
// and the report pipeline keys on them verbatim.
const (
	ColOperationTime = "Дата операции"
	ColPaymentDate   = "Дата платежа"
	ColCardID        = "Номер карты"
	ColAmount        = "Сумма операции"
	ColPaymentAmount = "Сумма платежа"
	ColStatus        = "Статус"
	ColCategory      = "Категория"
	ColDescription   = "Описание"
)

// Timestamp layouts of the export: operations carry a full timestamp,
// payment dates only a day.
const (
	operationTimeLayout = "02.01.2006 15:04:05"
	paymentDateLayout   = "02.01.2006"
)

// DecodeTable converts a header-plus-rows string matrix into transactions.
// The header row names the columns; order is not assumed. Rows whose
// operation timestamp does not parse are skipped with a warning, each other
// malformed cell degrades to its zero value. An empty matrix decodes to an
// empty table.
func DecodeTable(rows [][]string, logger *log.Logger) []core.Transaction {
	if len(rows) < 2 {
		return nil
	}
	headers := rows[0]
	col := func(name string) int { return indexOf(headers, name) }

	var (
		iOpTime   = col(ColOperationTime)
		iPayDate  = col(ColPaymentDate)
		iCard     = col(ColCardID)
		iAmount   = col(ColAmount)
		iPayAmt   = col(ColPaymentAmount)
		iStatus   = col(ColStatus)
		iCategory = col(ColCategory)
		iDescr    = col(ColDescription)
	)
	if iOpTime == -1 {
		logger.Warn("Operations table has no timestamp column", log.FieldRowCount, len(rows)-1)
		return nil
	}

	out := make([]core.Transaction, 0, len(rows)-1)
	for n, row := range rows[1:] {
		opTime, err := ParseOperationTime(safeGet(row, iOpTime))
		if err != nil {
			logger.Warn("Skipping row with malformed timestamp", "row", n+2, log.FieldError, err.Error())
			continue
		}
		tx := core.Transaction{
			OperationTime: opTime,
			CardID:        safeGet(row, iCard),
			Amount:        parseAmount(safeGet(row, iAmount)),
			PaymentAmount: parseAmount(safeGet(row, iPayAmt)),
			Status:        strings.TrimSpace(safeGet(row, iStatus)),
			Category:      strings.TrimSpace(safeGet(row, iCategory)),
			Description:   strings.TrimSpace(safeGet(row, iDescr)),
		}
		if d := strings.TrimSpace(safeGet(row, iPayDate)); d != "" {
			if pd, err := time.Parse(paymentDateLayout, d); err == nil {
				tx.PaymentDate = pd
			}
		}
		out = append(out, tx)
	}
	return out
}

// ValuesToStrings renders an interface matrix (as the Sheets API returns)
// into the string matrix DecodeTable expects.
func ValuesToStrings(values [][]interface{}) [][]string {
	out := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprint(v)
		}
		out[i] = cells
	}
	return out
}

// ParseOperationTime parses the export's fixed day.month.year timestamp.
func ParseOperationTime(s string) (time.Time, error) {
	return time.Parse(operationTimeLayout, strings.TrimSpace(s))
}

// parseAmount reads a signed decimal, tolerating a decimal comma and the
// thin spaces the export uses as thousand separators.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func indexOf(headers []string, name string) int {
	for i, h := range headers {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

func safeGet(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
