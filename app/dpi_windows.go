//go:build windows

package app

import (
	"log/slog"

	"golang.org/x/sys/windows"
)

const processPerMonitorDPIAware = 2

var (
	modShcore                  = windows.NewLazySystemDLL("shcore.dll")
	procSetProcessDpiAwareness = modShcore.NewProc("SetProcessDpiAwareness")
	modUser32                  = windows.NewLazySystemDLL("user32.dll")
	procSetProcessDPIAware     = modUser32.NewProc("SetProcessDPIAware")
)

// EnableDPIAwareness makes overlay coordinates and captured pixels agree on
// scaled displays. Must run before the first Tk window is created.
func EnableDPIAwareness(logger *slog.Logger) {
	if err := procSetProcessDpiAwareness.Find(); err == nil {
		ret, _, _ := procSetProcessDpiAwareness.Call(uintptr(processPerMonitorDPIAware))
		if ret == 0 {
			logger.Debug("dpi awareness", "mode", "per-monitor")
			return
		}
		logger.Warn("dpi awareness failed", "hresult", ret)
	}
	if err := procSetProcessDPIAware.Find(); err != nil {
		logger.Warn("dpi awareness unavailable", "error", err)
		return
	}
	if ret, _, _ := procSetProcessDPIAware.Call(); ret != 0 {
		logger.Debug("dpi awareness", "mode", "system")
	}
}
