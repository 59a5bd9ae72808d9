package loadtest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"TodoWebService/models"
)

// action is one of the four things a virtual user can do on a tick.
type action int

const (
	actionList action = iota
	actionCreate
	actionUpdate
	actionDelete
)

// actionTable encodes the behavior profile weights: list 3, create 2,
// update 1, delete 1.
var actionTable = []action{
	actionList, actionList, actionList,
	actionCreate, actionCreate,
	actionUpdate,
	actionDelete,
}

// VirtualUser is an independent simulated client. It performs one weighted
// action per tick with a random pause in between, and tracks the ids it has
// created so update and delete can target a live record.
type VirtualUser struct {
	host      string
	client    *http.Client
	rng       *rand.Rand
	collector *Collector
	userCount func() int
	minWait   time.Duration
	maxWait   time.Duration
	todoIDs   []int
}

// NewVirtualUser creates a user. The client is shared between users so
// connections are pooled; userCount reports the live user total at sample time.
func NewVirtualUser(id int, cfg *Config, client *http.Client, collector *Collector, userCount func() int) *VirtualUser {
	return &VirtualUser{
		host:      cfg.Host,
		client:    client,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano() + int64(id))),
		collector: collector,
		userCount: userCount,
		minWait:   cfg.MinWait(),
		maxWait:   cfg.MaxWait(),
	}
}

// Run performs actions until the context is cancelled.
func (u *VirtualUser) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(u.wait()):
		}
		switch actionTable[u.rng.Intn(len(actionTable))] {
		case actionList:
			u.listTodos(ctx)
		case actionCreate:
			u.createTodo(ctx)
		case actionUpdate:
			u.updateTodo(ctx)
		case actionDelete:
			u.deleteTodo(ctx)
		}
	}
}

// wait picks a random pause between the configured bounds.
func (u *VirtualUser) wait() time.Duration {
	if u.maxWait <= u.minWait {
		return u.minWait
	}
	return u.minWait + time.Duration(u.rng.Int63n(int64(u.maxWait-u.minWait)))
}

func (u *VirtualUser) listTodos(ctx context.Context) {
	u.call(ctx, http.MethodGet, "/todos", nil, map[int]bool{200: true, 204: true}, nil)
}

func (u *VirtualUser) createTodo(ctx context.Context) {
	todo := models.Todo{
		Id:        u.rng.Intn(10000) + 1,
		Item:      fmt.Sprintf("Test Todo %d", u.rng.Intn(1000)+1),
		Completed: false,
	}
	u.call(ctx, http.MethodPost, "/todos", todo, map[int]bool{200: true, 201: true}, func(code int) {
		u.todoIDs = append(u.todoIDs, todo.Id)
	})
}

func (u *VirtualUser) updateTodo(ctx context.Context) {
	if len(u.todoIDs) == 0 {
		return
	}
	id := u.todoIDs[u.rng.Intn(len(u.todoIDs))]
	todo := models.Todo{
		Id:        id,
		Item:      fmt.Sprintf("Updated Todo %d", u.rng.Intn(1000)+1),
		Completed: u.rng.Intn(2) == 0,
	}
	u.call(ctx, http.MethodPut, fmt.Sprintf("/todos/%d", id), todo, map[int]bool{200: true, 204: true}, nil)
}

func (u *VirtualUser) deleteTodo(ctx context.Context) {
	if len(u.todoIDs) == 0 {
		return
	}
	id := u.todoIDs[u.rng.Intn(len(u.todoIDs))]
	u.call(ctx, http.MethodDelete, fmt.Sprintf("/todos/%d", id), nil, map[int]bool{200: true, 204: true}, func(code int) {
		u.forget(id)
	})
}

// forget drops an id from the user's live set after a successful delete.
func (u *VirtualUser) forget(id int) {
	for i, stored := range u.todoIDs {
		if stored == id {
			u.todoIDs = append(u.todoIDs[:i], u.todoIDs[i+1:]...)
			return
		}
	}
}

// call issues one HTTP request, times it against the wall clock, and records
// a sample. expected is the status-code set that counts as success for this
// operation; onSuccess, if set, runs only when the status is in that set.
// Transport failures are recorded as failed samples with code 0.
func (u *VirtualUser) call(ctx context.Context, method, path string, body any, expected map[int]bool, onSuccess func(code int)) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.host+path, reqBody)
	if err != nil {
		return
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := u.client.Do(req)
	elapsed := time.Since(start)

	sample := Sample{
		Timestamp:       time.Now(),
		RequestType:     method,
		Name:            path,
		ResponseTimeMs:  float64(elapsed) / float64(time.Millisecond),
		ConcurrentUsers: u.userCount(),
	}
	if err != nil {
		// Requests cut off by run shutdown are not failures of the service.
		if ctx.Err() == nil {
			u.collector.Add(sample)
		}
		return
	}
	defer resp.Body.Close()

	content, _ := io.ReadAll(resp.Body)
	sample.ResponseLength = int64(len(content))
	sample.ResponseCode = resp.StatusCode
	sample.Success = expected[resp.StatusCode]
	u.collector.Add(sample)

	if sample.Success && onSuccess != nil {
		onSuccess(resp.StatusCode)
	}
}
