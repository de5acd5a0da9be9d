package cli

import (
	"context"
	"io"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/types"
	"github.com/m-mizutani/fireconf"
)

func DefineFirestoreIndexes(schemas record.Schemas) *fireconf.Config {
	return defineFirestoreIndexes(schemas)
}

func ResolveAddr(addr string, explicit bool, port string) string {
	return resolveAddr(addr, explicit, port)
}

func RunConsole(ctx context.Context, uc interfaces.DialogUsecases, userID types.UserID, in io.Reader, out io.Writer) error {
	return runConsole(ctx, uc, userID, in, out)
}
