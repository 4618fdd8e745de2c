// Package mta detects the installed mail transfer agent and builds the
// hardening actions for it. Detection is the one mandatory setup step:
// with no supported MTA present the run must fail before any prompting.
package mta

import (
	"errors"
	"os/exec"

	"github.com/astinowak-wq/LinkZero-sub000/internal/pipeline"
	"github.com/astinowak-wq/LinkZero-sub000/internal/sysexec"
)

// ErrNotFound is the setup-level fatal for a host with no supported MTA.
var ErrNotFound = errors.New("no supported MTA found (postfix, exim, sendmail)")

// test seam
var lookPath = exec.LookPath

// MTA identifies the detected mail transfer agent.
type MTA int

const (
	Unknown MTA = iota
	Postfix
	Exim
	Sendmail
)

func (m MTA) String() string {
	switch m {
	case Postfix:
		return "postfix"
	case Exim:
		return "exim"
	case Sendmail:
		return "sendmail"
	default:
		return "unknown"
	}
}

// probe maps each MTA to the binary whose presence identifies it.
var probe = []struct {
	mta    MTA
	binary string
}{
	{Postfix, "postconf"},
	{Exim, "exim"},
	{Sendmail, "sendmail"},
}

// Detect returns the first supported MTA found on PATH, in priority order.
func Detect() (MTA, error) {
	for _, p := range probe {
		if _, err := lookPath(p.binary); err == nil {
			return p.mta, nil
		}
	}
	return Unknown, ErrNotFound
}

// HardeningActions builds the mutating steps for the detected MTA.
// Building is pure: nothing is executed here.
func HardeningActions(m MTA) []pipeline.Action {
	switch m {
	case Postfix:
		return postfixActions()
	case Exim:
		return eximActions()
	case Sendmail:
		return sendmailActions()
	default:
		return nil
	}
}

func postfixActions() []pipeline.Action {
	return []pipeline.Action{
		{
			Description: "Require TLS before SMTP authentication",
			Command:     sysexec.New("postconf", "-e", "smtpd_tls_auth_only=yes"),
		},
		{
			Description: "Enable the submission service on port 587",
			Command:     sysexec.New("postconf", "-Me", "submission/inet=submission inet n - y - - smtpd"),
		},
		{
			Description: "Enable the smtps service on port 465",
			Command:     sysexec.New("postconf", "-Me", "smtps/inet=smtps inet n - y - - smtpd"),
		},
		{
			Description: "Disable the VRFY command",
			Command:     sysexec.New("postconf", "-e", "disable_vrfy_command=yes"),
		},
		{
			Description: "Restart Postfix",
			Command:     sysexec.New("systemctl", "restart", "postfix"),
		},
	}
}

func eximActions() []pipeline.Action {
	return []pipeline.Action{
		{
			Description: "Listen on the submission ports in Exim",
			Command: sysexec.New("sed", "-ri",
				`s/^\s*daemon_smtp_ports.*/daemon_smtp_ports = 25 : 465 : 587/`,
				"/etc/exim/exim.conf"),
		},
		{
			Description: "Restart Exim",
			Command:     sysexec.New("systemctl", "restart", "exim"),
		},
	}
}

func sendmailActions() []pipeline.Action {
	return []pipeline.Action{
		{
			Description: "Enable the MSA daemon on port 587 in sendmail.mc",
			Command: sysexec.New("sed", "-i",
				`s/^dnl \(DAEMON_OPTIONS(`+"`"+`Port=submission.*\)$/\1/`,
				"/etc/mail/sendmail.mc"),
		},
		{
			Description: "Restart Sendmail",
			Command:     sysexec.New("systemctl", "restart", "sendmail"),
		},
	}
}
