// Package player launches external players and downloaders for resolved streams.
package player

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/cine-cli/cine/log"
	"github.com/samber/lo"
)

// Supported players, in the order they appear in the setup wizard.
const (
	MPV     = "mpv"
	VLC     = "vlc"
	Clapper = "clapper"
	IINA    = "iina"
)

// Supported lists the players that can be configured.
var Supported = []string{MPV, VLC, Clapper, IINA}

var (
	// ErrNoPlayer is returned when no supported player is installed.
	ErrNoPlayer = errors.New("no supported player (mpv/vlc) found on PATH")
	// ErrMissingBinary is returned when a helper program is not installed.
	ErrMissingBinary = errors.New("binary not found on PATH")
)

// lookPath is swapped in tests.
var lookPath = exec.LookPath

func installed(name string) bool {
	if name == IINA {
		return iinaAvailable()
	}
	_, err := lookPath(name)
	return err == nil
}

// Choose returns the preferred player when installed, otherwise mpv, otherwise vlc.
func Choose(preferred string) (string, error) {
	preferred = strings.ToLower(strings.TrimSpace(preferred))
	if preferred != "" && lo.Contains(Supported, preferred) && installed(preferred) {
		return preferred, nil
	}

	for _, fallback := range []string{MPV, VLC} {
		if installed(fallback) {
			return fallback, nil
		}
	}

	return "", ErrNoPlayer
}

// Target is something to play.
type Target struct {
	URL   string
	Title string
	// Referrer is sent by players that support it; some hosts refuse requests without it.
	Referrer string
}

// Args returns the command line that plays t with player.
func Args(player string, t Target) (string, []string, error) {
	target, err := sanitizeMediaTarget(t.URL)
	if err != nil {
		return "", nil, fmt.Errorf("invalid media target: %w", err)
	}
	title := sanitizeTitle(t.Title)

	switch player {
	case MPV:
		return MPV, mpvArgs(target, title, t.Referrer), nil
	case VLC:
		args := []string{}
		if title != "" {
			args = append(args, "--meta-title="+title)
		}
		if t.Referrer != "" {
			args = append(args, "--http-referrer="+t.Referrer)
		}
		return VLC, append(args, target), nil
	case Clapper:
		return Clapper, []string{target}, nil
	case IINA:
		return "open", iinaArgs(target, title, t.Referrer), nil
	default:
		return "", nil, fmt.Errorf("unsupported player %q", player)
	}
}

// Play starts player on t without waiting for it to exit.
func Play(player string, t Target) (*Process, error) {
	name, args, err := Args(player, t)
	if err != nil {
		return nil, err
	}

	return detach(name, args...)
}

// Process is a running external program.
type Process struct {
	cmd    *exec.Cmd
	exited chan struct{}
}

// Wait returns a channel closed when the process exits.
func (p *Process) Wait() <-chan struct{} {
	return p.exited
}

// Kill stops the process and its group.
func (p *Process) Kill() error {
	select {
	case <-p.exited:
		return nil
	default:
		return killProcess(p.cmd)
	}
}

// detach starts name in its own process group with no standard streams.
func detach(name string, args ...string) (*Process, error) {
	if _, err := lookPath(name); err != nil {
		return nil, fmt.Errorf("%s: %w", name, ErrMissingBinary)
	}

	cmd := exec.Command(name, args...)
	cmd.SysProcAttr = sysProcAttr()

	log.Infof("launching %s %s", name, strings.Join(args, " "))
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", name, err)
	}

	p := &Process{cmd: cmd, exited: make(chan struct{})}
	go func() {
		_ = cmd.Wait()
		close(p.exited)
	}()

	return p, nil
}

// attach runs name in the foreground, sharing the terminal.
func attach(name string, args ...string) error {
	if _, err := lookPath(name); err != nil {
		return fmt.Errorf("%s: %w", name, ErrMissingBinary)
	}

	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Infof("running %s %s", name, strings.Join(args, " "))
	return cmd.Run()
}
