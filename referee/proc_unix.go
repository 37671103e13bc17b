//go:build unix

package referee

import (
	"os/exec"
	"syscall"
)

// killGroup puts the player in its own process group and makes
// cancellation kill the whole group, so processes the player started
// die with it.
func killGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
