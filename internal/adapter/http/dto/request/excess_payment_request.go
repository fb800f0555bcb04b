package request

import "encoding/json"

// ChargeExcessRequest is the payload for charging the client excess.
//
// `provider_payload` is stored as-is (raw JSON) to support varying Mercado
// Pago schemas; amount and reference fields are filled server-side from the
// reconciled totals.
type ChargeExcessRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
