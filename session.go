package knuckleball

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// DefaultSession answers the fixed Connection message table: a
// liveness check, the address the session was bound from, one-line
// host diagnostics, and an echo utility. Anything else is an invalid
// message rather than a panic, matching every other actor's failure
// mode.
type DefaultSession struct {
	RemoteAddr string
}

// NewDefaultSession binds a session to the address of its connection.
func NewDefaultSession(remoteAddr string) *DefaultSession {
	return &DefaultSession{RemoteAddr: remoteAddr}
}

func (s *DefaultSession) Receive(messageName string, arguments []string) string {
	switch messageName {
	case "ping":
		return "pong"
	case "whoami":
		return renderString(s.RemoteAddr)
	case "hostInfo":
		return renderString(s.hostInfoLine())
	case "echo:":
		if len(arguments) != 1 {
			return ExcWrongNumberOfArguments.String()
		}
		return renderString(arguments[0])
	default:
		return ExcInvalidMessage.String()
	}
}

// hostInfoLine renders a one-line uptime/load summary using gopsutil.
func (s *DefaultSession) hostInfoLine() string {
	info, err := host.Info()
	if err != nil {
		return "host info unavailable"
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Sprintf("uptime=%ds", info.Uptime)
	}
	return fmt.Sprintf("uptime=%ds memUsedPercent=%.1f", info.Uptime, vm.UsedPercent)
}
