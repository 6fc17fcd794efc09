package cmd

import (
	"errors"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// RunExtension attempts to find and execute an external mrk-<subcommand> binary.
//
// Global flags are passed to the extension as environment variables. It
// returns (true, exitCode) if an extension was found and executed, and
// (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "mrk-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debug().Err(err).Str("extension", externalCmdName).Msg("external command not found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = append(os.Environ(),
		EnvPrices+"="+*pricesFile,
		EnvHoldings+"="+*holdingsFile,
		EnvCurrency+"="+*defaultCurrency,
		EnvLogLevel+"="+*logLevel,
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		log.Error().Err(err).Str("extension", externalCmdName).Msg("cannot execute external command")
		return true, 1
	}
	return true, 0
}
