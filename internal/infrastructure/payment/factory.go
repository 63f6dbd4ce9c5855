package payment

// NewGateway maps a configured gateway name to an adapter. Pure and
// total: unrecognized names fall back to the mock adapter.
func NewGateway(name string, proc *Processor, baseURL string) Gateway {
	switch name {
	case "paymentcloud":
		return newProxyGateway("paymentcloud", baseURL)
	case "easypay":
		return newProxyGateway("easypay", baseURL)
	default:
		return NewMockGateway(proc)
	}
}
