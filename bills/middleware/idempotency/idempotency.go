// Package idempotency makes tagged write endpoints safe to retry: the
// first request with a given X-Idempotency-Key runs normally and its
// response is cached; replays with the same key and body get the cached
// response back instead of a second write.
package idempotency

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"
)

const Header = "X-Idempotency-Key"

const (
	stateProcessing = "processing"
	stateCompleted  = "completed"
)

//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, keyErr := requestKey(req)
	if keyErr != nil {
		return middleware.Response{Err: keyErr}
	}

	hash := payloadHash(req)

	entry, err := Entries.Get(req.Context(), key)
	if errors.Is(err, cache.Miss) {
		return runAndRecord(req, next, key, hash)
	}
	if err != nil {
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency state"}}
	}

	if hash != "" && entry.BodyHash != "" && hash != entry.BodyHash {
		return middleware.Response{Err: &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key reused with a different request body"}}
	}

	switch entry.State {
	case stateProcessing:
		return middleware.Response{Err: &errs.Error{Code: errs.Aborted, Message: "request with this idempotency key is still in flight"}}
	case stateCompleted:
		if resp, ok := replay(req, entry); ok {
			rlog.Info("replaying cached response", "key", key.Key)
			return resp
		}
	default:
		rlog.Warn("unknown idempotency state, running request", "key", key.Key, "state", entry.State)
	}

	return next(req)
}

// runAndRecord marks the key as in flight, runs the request, and records
// the outcome. A failed request clears the marker so the same key can be
// retried.
func runAndRecord(req middleware.Request, next middleware.Next, key Key, hash string) middleware.Response {
	marker := Entry{State: stateProcessing, BodyHash: hash, CreatedAt: time.Now()}
	if err := Entries.Set(req.Context(), key, marker); err != nil {
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to record idempotency state"}}
	}

	resp := next(req)

	if resp.Err != nil {
		if _, err := Entries.Delete(req.Context(), key); err != nil {
			rlog.Error("failed to clear idempotency marker", "error", err, "key", key.Key)
		}
		return resp
	}

	completed := Entry{State: stateCompleted, BodyHash: hash, CreatedAt: time.Now()}
	if resp.Payload != nil {
		raw, err := json.Marshal(resp.Payload)
		if err != nil {
			rlog.Error("failed to marshal response for idempotency cache", "error", err, "key", key.Key)
		} else {
			completed.Response = raw
		}
	}
	if err := Entries.Set(req.Context(), key, completed); err != nil {
		rlog.Error("failed to cache idempotent response", "error", err, "key", key.Key)
	}

	return resp
}

func requestKey(req middleware.Request) (Key, *errs.Error) {
	var val string
	if headers := req.Data().Headers; headers != nil {
		val = strings.TrimSpace(headers.Get(Header))
	}
	if val == "" {
		return Key{}, &errs.Error{Code: errs.InvalidArgument, Message: Header + " header is required"}
	}

	return Key{Resource: req.Data().Path, Key: val}, nil
}

func payloadHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to hash request payload", "error", err)
		return ""
	}

	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// replay rebuilds a typed response payload from the cached JSON. A
// corrupted cache entry falls through to running the request again.
func replay(req middleware.Request, entry Entry) (middleware.Response, bool) {
	if len(entry.Response) == 0 {
		return middleware.Response{}, false
	}

	respType := req.Data().API.ResponseType
	if respType == nil {
		return middleware.Response{}, false
	}

	payload := reflect.New(respType.Elem()).Interface()
	if err := json.Unmarshal(entry.Response, payload); err != nil {
		rlog.Error("failed to decode cached response", "error", err)
		return middleware.Response{}, false
	}

	return middleware.Response{Payload: payload}, true
}
