package input

import (
	"golang.org/x/sys/windows"
)

var (
	moduser32            = windows.NewLazySystemDLL("user32.dll")
	procGetAsyncKeyState = moduser32.NewProc("GetAsyncKeyState")
)

// GetAsyncKeyState reports whether the key is down at the time of the call.
func GetAsyncKeyState(vk uint8) bool {
	ret, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return ret&0x8000 != 0
}

func NewPoller() (*Poller, error) {
	err := procGetAsyncKeyState.Find()
	if err != nil {
		return nil, err
	}
	return newPoller(GetAsyncKeyState), nil
}
