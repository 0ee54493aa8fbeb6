package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/matzehuels/statcard/pkg/card/frame"
	"github.com/matzehuels/statcard/pkg/card/theme"
	cerrors "github.com/matzehuels/statcard/pkg/errors"
	"github.com/matzehuels/statcard/pkg/observability"
	"github.com/matzehuels/statcard/pkg/source"
	"github.com/matzehuels/statcard/pkg/statscard"
)

// errorCacheSeconds is the browser cache lifetime of error cards.
const errorCacheSeconds = 600

const cacheKeyType = "card"

func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	username, opts, err := ParseQuery(r.URL.Query())
	if err == nil {
		err = opts.Validate()
	}
	if err != nil {
		s.writeError(w, opts, err)
		return
	}

	svg, err := s.card(r.Context(), username, opts)
	if err != nil {
		s.writeError(w, opts, err)
		return
	}
	writeSVG(w, svg, fmt.Sprintf("public, max-age=%d", int(s.ttl.Seconds())))
}

// card returns the rendered card from the cache or renders it. Concurrent
// callers with the same key share one fetch and render.
func (s *Server) card(ctx context.Context, username string, opts statscard.Options) (string, error) {
	key := s.keyer.CardKey(username, cacheKeyOptions(opts))

	if data, hit, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("cache get failed", "err", err)
	} else if hit {
		observability.Cache().OnCacheHit(ctx, cacheKeyType)
		return string(data), nil
	}
	observability.Cache().OnCacheMiss(ctx, cacheKeyType)

	v, err, shared := s.group.Do(key, func() (any, error) {
		// detached so one canceled client does not fail the shared render
		ctx := context.WithoutCancel(ctx)
		svg, err := s.render(ctx, username, opts)
		if err != nil {
			return "", err
		}
		if err := s.cache.Set(ctx, key, []byte(svg), s.ttl); err != nil {
			s.logger.Warn("cache set failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, cacheKeyType, len(svg))
		}
		return svg, nil
	})
	if shared {
		s.logger.Debug("shared render", "user", username)
	}
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (s *Server) render(ctx context.Context, username string, opts statscard.Options) (string, error) {
	stats, err := source.Fetch(ctx, s.source, username)
	if err != nil {
		return "", err
	}

	start := time.Now()
	observability.Render().OnRenderStart(ctx, username)
	svg, err := statscard.Render(stats, opts, statscard.WithClock(s.clock))
	observability.Render().OnRenderComplete(ctx, username, len(svg), time.Since(start), err)
	return svg, err
}

// writeError renders err as an error card in the colors of the requested
// theme.
func (s *Server) writeError(w http.ResponseWriter, opts statscard.Options, err error) {
	content := frame.ErrorContent{Message: cerrors.UserMessage(err)}
	switch {
	case errors.Is(err, source.ErrNotFound):
		content.Message = "Could not find stats for this user."
		content.Secondary = "Make sure the username is correct."
	case cerrors.GetCode(err) != "":
		content.Title = cerrors.UserTitle(err, "")
	default:
		s.logger.Error("render card", "err", err)
		content.Message = "Could not render the card."
		content.Secondary = "Please try again later."
	}

	colors := theme.Resolve(opts.Theme, opts.Overrides())
	writeSVG(w, frame.RenderError(content, colors),
		fmt.Sprintf("public, max-age=%d, s-maxage=%d", errorCacheSeconds/2, errorCacheSeconds))
}

func writeSVG(w http.ResponseWriter, svg, cacheControl string) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", cacheControl)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(svg))
}
