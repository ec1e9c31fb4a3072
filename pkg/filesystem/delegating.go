package filesystem

// DelegatingProvider forwards every Provider operation to another provider.
// Decorators embed it and override only the operations they change.
type DelegatingProvider struct {
	delegate Provider
}

var _ Provider = (*DelegatingProvider)(nil)

func NewDelegatingProvider(p Provider) *DelegatingProvider {
	return &DelegatingProvider{delegate: p}
}

// Delegate returns the wrapped provider.
func (d *DelegatingProvider) Delegate() Provider {
	return d.delegate
}

func (d *DelegatingProvider) Scheme() string {
	return d.delegate.Scheme()
}

func (d *DelegatingProvider) Path(uri string) (string, error) {
	return d.delegate.Path(uri)
}

func (d *DelegatingProvider) Store(path string) (Store, error) {
	return d.delegate.Store(path)
}
