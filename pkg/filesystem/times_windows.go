//go:build windows

package filesystem

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Times returns the creation and modification timestamps for path
// from the Win32 file attribute data.
func (fs *LocalFileSystem) Times(path string) (created, modified time.Time) {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return created, modified
	}

	var data windows.Win32FileAttributeData

	err = windows.GetFileAttributesEx(name, windows.GetFileExInfoStandard, (*byte)(unsafe.Pointer(&data)))
	if err != nil {
		return created, modified
	}

	created = time.Unix(0, data.CreationTime.Nanoseconds())
	modified = time.Unix(0, data.LastWriteTime.Nanoseconds())

	return created, modified
}
