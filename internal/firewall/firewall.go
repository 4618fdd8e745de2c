// Package firewall builds the port-rule actions for the detected firewall
// backend. A host without any supported backend is not an error: the
// firewall actions are simply omitted.
package firewall

import (
	"fmt"
	"os/exec"
	"strconv"

	"github.com/astinowak-wq/LinkZero-sub000/internal/pipeline"
	"github.com/astinowak-wq/LinkZero-sub000/internal/sysexec"
)

// test seam
var lookPath = exec.LookPath

// Backend identifies the firewall control tool in use.
type Backend int

const (
	None Backend = iota
	CSF
	Iptables
)

func (b Backend) String() string {
	switch b {
	case CSF:
		return "csf"
	case Iptables:
		return "iptables"
	default:
		return "none"
	}
}

// Detect prefers CSF when present and falls back to raw iptables.
func Detect() Backend {
	if _, err := lookPath("csf"); err == nil {
		return CSF
	}
	if _, err := lookPath("iptables"); err == nil {
		return Iptables
	}
	return None
}

// AllowPortActions builds one action per inbound TCP port, plus a reload
// step for backends that need one. Building is pure.
func AllowPortActions(b Backend, ports []int) []pipeline.Action {
	if b == None || len(ports) == 0 {
		return nil
	}

	var actions []pipeline.Action
	for _, port := range ports {
		actions = append(actions, allowPort(b, port))
	}

	if b == CSF {
		actions = append(actions, pipeline.Action{
			Description: "Reload CSF firewall rules",
			Command:     sysexec.New("csf", "-r"),
		})
	}
	return actions
}

func allowPort(b Backend, port int) pipeline.Action {
	desc := fmt.Sprintf("Allow inbound TCP port %d", port)
	switch b {
	case CSF:
		// csf has no CLI for port rules; TCP_IN in csf.conf is the
		// canonical place. The rule is idempotent-ish: a duplicate port in
		// TCP_IN is harmless to csf.
		sedExpr := fmt.Sprintf(`s/^TCP_IN = "(.*)"$/TCP_IN = "\1,%d"/`, port)
		return pipeline.Action{
			Description: desc + " (csf)",
			Command:     sysexec.New("sed", "-ri", sedExpr, "/etc/csf/csf.conf"),
		}
	default:
		return pipeline.Action{
			Description: desc + " (iptables)",
			Command: sysexec.New("iptables",
				"-I", "INPUT", "-p", "tcp", "--dport", strconv.Itoa(port), "-j", "ACCEPT"),
		}
	}
}
