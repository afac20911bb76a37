package main

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	GWL_EXSTYLE = -20

	WS_EX_TOPMOST    = 0x00000008
	WS_EX_TOOLWINDOW = 0x00000080
	WS_EX_LAYERED    = 0x00080000

	LWA_COLORKEY = 0x00000001

	SWP_NOSIZE     = 0x0001
	SWP_NOACTIVATE = 0x0010
	SWP_SHOWWINDOW = 0x0040
)

// (HWND)-1
const HWND_TOPMOST = ^windows.HWND(0)

var (
	moduser32                      = windows.NewLazySystemDLL("user32.dll")
	procGetWindowLongPtrW          = moduser32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = moduser32.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = moduser32.NewProc("SetLayeredWindowAttributes")
	procSetWindowPos               = moduser32.NewProc("SetWindowPos")
	procGetWindowRect              = moduser32.NewProc("GetWindowRect")
)

func GetWindowLongPtr(hWnd windows.HWND, index int32) (uintptr, error) {
	ret, _, err := procGetWindowLongPtrW.Call(
		uintptr(hWnd),
		uintptr(index),
	)

	if ret == 0 && err != windows.ERROR_SUCCESS {
		return 0, err
	}

	return ret, nil
}

func SetWindowLongPtr(hWnd windows.HWND, index int32, value uintptr) error {
	// zero is also a valid previous value, only trust a non-zero last error
	ret, _, err := procSetWindowLongPtrW.Call(
		uintptr(hWnd),
		uintptr(index),
		value,
	)

	if ret == 0 && err != windows.ERROR_SUCCESS {
		return err
	}

	return nil
}

// SetLayeredWindowAttributes with a COLORREF (0x00BBGGRR) key.
func SetLayeredWindowAttributes(hWnd windows.HWND, crKey uint32, bAlpha uint8, dwFlags uint32) error {
	ret, _, err := procSetLayeredWindowAttributes.Call(
		uintptr(hWnd),
		uintptr(crKey),
		uintptr(bAlpha),
		uintptr(dwFlags),
	)

	if ret == 0 {
		return err
	}

	return nil
}

func SetWindowPos(hWnd, hWndInsertAfter windows.HWND, x, y, cx, cy int32, uFlags uint32) error {
	ret, _, err := procSetWindowPos.Call(
		uintptr(hWnd),
		uintptr(hWndInsertAfter),
		uintptr(x),
		uintptr(y),
		uintptr(cx),
		uintptr(cy),
		uintptr(uFlags),
	)

	if ret == 0 {
		return err
	}

	return nil
}

func GetWindowRect(hWnd windows.HWND) (rect windows.Rect, _ error) {
	ret, _, err := procGetWindowRect.Call(
		uintptr(hWnd),
		uintptr(unsafe.Pointer(&rect)),
	)

	if ret == 0 {
		return rect, err
	}

	return rect, nil
}
