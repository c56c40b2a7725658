//go:build !windows

package decorate

type noopAttributes struct{}

func platformAttributes() Attributes {
	return noopAttributes{}
}

func (noopAttributes) HideSidecar(string) error { return nil }
func (noopAttributes) MarkFolder(string) error  { return nil }
