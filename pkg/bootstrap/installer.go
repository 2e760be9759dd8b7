package bootstrap

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/trashhalo/pwaicon/log"
)

// CommandInstaller runs an external package-install command, for example
// "apt-get install -y librsvg2-bin".
type CommandInstaller struct {
	Command []string
}

func (c CommandInstaller) Install(ctx context.Context, name string) error {
	if len(c.Command) == 0 {
		return ErrNoInstaller
	}

	out, err := exec.CommandContext(ctx, c.Command[0], c.Command[1:]...).CombinedOutput()
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		log.Debug().Str("backend", name).Str("installer", c.Command[0]).Msg(scanner.Text())
	}
	if err != nil {
		return fmt.Errorf("%s: %w", strings.Join(c.Command, " "), err)
	}
	return nil
}
