package search

import (
	"context"
	"fmt"
	"time"

	log "github.com/Emacore17/adottaungatto-it-sub001/pkg/logger"
	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const defaultIndexTimeout = 10 * time.Second

// index is a thin Elasticsearch client for one index of T documents.
type index[T any] struct {
	connStr string
	name    string
}

func NewIndex[T any](connStr, name string) *index[T] {
	if connStr == "" {
		log.Logger().Panic("elasticsearch connection string must be set", zap.String("index", name))
	}

	return &index[T]{
		connStr: connStr,
		name:    name,
	}
}

// Bulk upserts items and deletes the given ids in one _bulk call.
func (i *index[T]) Bulk(ctx context.Context, items []Item[T], deleteIDs []string) error {
	var payload []byte

	for _, item := range items {
		payload = append(payload, []byte(`{"index":{"_index":"`+i.name+`","_id":"`+item.Id+`"}}`)...)
		payload = append(payload, '\n')
		source, err := jsoniter.Marshal(item.Source)
		if err != nil {
			return fmt.Errorf("could not encode document %s: %w", item.Id, err)
		}
		payload = append(payload, source...)
		payload = append(payload, '\n')
	}
	for _, id := range deleteIDs {
		payload = append(payload, []byte(`{"delete":{"_index":"`+i.name+`","_id":"`+id+`"}}`)...)
		payload = append(payload, '\n')
	}

	if len(payload) == 0 {
		return nil
	}

	var response BulkResponse
	if err := i.do(ctx, fasthttp.MethodPost, i.connStr+"/_bulk", payload, &response); err != nil {
		return err
	}
	if response.Errors {
		return fmt.Errorf("elasticsearch bulk request on %s reported item errors", i.name)
	}

	log.Logger().Debug("elastic bulk write",
		zap.String("index", i.name),
		zap.Int("indexed", len(items)),
		zap.Int("deleted", len(deleteIDs)))

	return nil
}

func (i *index[T]) Search(ctx context.Context, query map[string]interface{}) (*Result[T], error) {
	payload, err := jsoniter.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("could not encode query: %w", err)
	}

	var response Result[T]
	if err := i.do(ctx, fasthttp.MethodPost, i.connStr+"/"+i.name+"/_search", payload, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// Ping checks that the index exists and answers.
func (i *index[T]) Ping(ctx context.Context) error {
	var response struct {
		Count int `json:"count"`
	}
	return i.do(ctx, fasthttp.MethodGet, i.connStr+"/"+i.name+"/_count", nil, &response)
}

func (i *index[T]) do(ctx context.Context, method, uri string, body []byte, out interface{}) error {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	res := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(res)

	req.SetBody(body)
	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json")
	req.SetRequestURI(uri)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(defaultIndexTimeout)
	}

	if err := fasthttp.DoDeadline(req, res, deadline); err != nil {
		return fmt.Errorf("elasticsearch request to %s failed: %w", i.name, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if res.StatusCode() >= fasthttp.StatusMultipleChoices {
		return fmt.Errorf("elasticsearch responded %d for %s", res.StatusCode(), i.name)
	}

	if err := jsoniter.Unmarshal(res.Body(), out); err != nil {
		return fmt.Errorf("could not decode elasticsearch response: %w", err)
	}

	return nil
}
