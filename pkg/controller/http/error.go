package http

import (
	"net/http"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.From(r.Context())

	switch {
	case goerr.HasTag(err, errs.TagNotFound):
		logger.Warn("Not Found", logging.ErrAttr(err))
		http.Error(w, err.Error(), http.StatusNotFound)

	case goerr.HasTag(err, errs.TagValidation), goerr.HasTag(err, errs.TagInvalidRequest):
		logger.Warn("Bad Request", logging.ErrAttr(err))
		http.Error(w, err.Error(), http.StatusBadRequest)

	case goerr.HasTag(err, errs.TagUnauthorized):
		logger.Warn("Unauthorized", logging.ErrAttr(err))
		http.Error(w, err.Error(), http.StatusUnauthorized)

	case goerr.HasTag(err, errs.TagExternal), goerr.HasTag(err, errs.TagSlackError):
		logger.Error("External Service Error", logging.ErrAttr(err))
		http.Error(w, err.Error(), http.StatusBadGateway)

	case goerr.HasTag(err, errs.TagTimeout):
		logger.Error("Gateway Timeout", logging.ErrAttr(err))
		http.Error(w, err.Error(), http.StatusGatewayTimeout)

	default:
		errs.Handle(r.Context(), err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
