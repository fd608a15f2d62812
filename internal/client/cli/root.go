package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.session == nil {
		return "(signed out)"
	}
	return fmt.Sprintf("(%s)", displayName(&a.session.Account))
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to wellfinder (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
