//go:build windows

package decorate

import "golang.org/x/sys/windows"

type windowsAttributes struct{}

func platformAttributes() Attributes {
	return windowsAttributes{}
}

// HideSidecar marks the Desktop.ini hidden and system so Explorer honors it
// without showing it in listings.
func (windowsAttributes) HideSidecar(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return err
	}
	return windows.SetFileAttributes(p, attrs|windows.FILE_ATTRIBUTE_HIDDEN|windows.FILE_ATTRIBUTE_SYSTEM)
}

// MarkFolder sets the read-only bit on the folder itself, which Explorer
// treats as "this folder has customized appearance".
func (windowsAttributes) MarkFolder(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return err
	}
	return windows.SetFileAttributes(p, attrs|windows.FILE_ATTRIBUTE_READONLY)
}
