package models

import (
	"encoding/json"
	"strings"
)

// Keys recognised in a transaction's detail bag.
const (
	DetailKeyEndToEndID             = "end_to_end_id"
	DetailKeyRemittanceInfo         = "remittance_info"
	DetailKeyPartnerName            = "partner_name"
	DetailKeyPartnerIBAN            = "partner_iban"
	DetailKeyPartnerAccountNo       = "partner_account_no"
	DetailKeyPaymentTypeCode        = "payment_type_code"
	DetailKeyDirection              = "direction"
	DetailKeyCategoryPurposeCode    = "category_purpose_code"
	DetailKeyCorrelationID          = "correlation_id"
	DetailKeyStructuredEntryDetails = "structured_entry_details"
)

const (
	DirectionIncoming = "IN"
	DirectionOutgoing = "OUT"
)

// TransactionDetail is the typed form of the free-form detail bag supplied by
// payment channels. Unknown keys are ignored.
type TransactionDetail struct {
	EndToEndID          string
	RemittanceInfo      string
	PartnerName         string
	PartnerIBAN         string
	PartnerAccountNo    string
	PaymentTypeCode     string
	Direction           string
	CategoryPurposeCode string
	CorrelationID       string
	// Raw JSON array of CAMT TransactionDetails objects supplied by the
	// channel. Carried opaquely into the document.
	StructuredEntryDetails json.RawMessage
}

// ParseTransactionDetail reads the recognised keys out of a detail bag.
// A nil bag yields the zero value.
func ParseTransactionDetail(m JSONBMap) TransactionDetail {
	d := TransactionDetail{
		EndToEndID:          m.String(DetailKeyEndToEndID),
		RemittanceInfo:      m.String(DetailKeyRemittanceInfo),
		PartnerName:         m.String(DetailKeyPartnerName),
		PartnerIBAN:         m.String(DetailKeyPartnerIBAN),
		PartnerAccountNo:    m.String(DetailKeyPartnerAccountNo),
		PaymentTypeCode:     m.String(DetailKeyPaymentTypeCode),
		Direction:           strings.ToUpper(m.String(DetailKeyDirection)),
		CategoryPurposeCode: m.String(DetailKeyCategoryPurposeCode),
		CorrelationID:       m.String(DetailKeyCorrelationID),
	}

	switch raw := m[DetailKeyStructuredEntryDetails].(type) {
	case nil:
	case string:
		if strings.TrimSpace(raw) != "" {
			d.StructuredEntryDetails = json.RawMessage(raw)
		}
	default:
		if b, err := json.Marshal(raw); err == nil {
			d.StructuredEntryDetails = b
		}
	}

	return d
}

// HasDirection reports whether the channel stated the payment direction.
func (d TransactionDetail) HasDirection() bool {
	return d.Direction == DirectionIncoming || d.Direction == DirectionOutgoing
}

func (d TransactionDetail) HasStructuredEntryDetails() bool {
	return len(d.StructuredEntryDetails) > 0
}

// IsOnUs reports whether the payment type marks an internal transfer.
func (d TransactionDetail) IsOnUs(prefix string) bool {
	return prefix != "" && strings.HasPrefix(d.PaymentTypeCode, prefix)
}
