package rawaddr

type IClient interface {
	GetAddress(address string) (*Response, error)
}
