// Package server exposes the assistant's fulfillment endpoint and dispatches
// SYNC, QUERY and EXECUTE intents into the smart home service.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/anicoll/webthings-integration/internal/pkg/model"
)

type smartHomeService interface {
	Devices(ctx context.Context, ids []string) (map[string]*model.Device, error)
	States(ctx context.Context, ids []string) (map[string]model.DeviceState, error)
	Execute(ctx context.Context, ids []string, execs []model.Execution) (map[string]model.DeviceState, model.CommandParams, error)
}

type server struct {
	smarthome   smartHomeService
	agentUserID string
	logger      *zap.Logger
}

func New(svc smartHomeService, agentUserID string) *server {
	if agentUserID == "" {
		agentUserID = uuid.NewString()
	}
	return &server{
		smarthome:   svc,
		agentUserID: agentUserID,
		logger:      zap.L(),
	}
}

// Handler returns the fulfillment HTTP handler.
func (s *server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/fulfillment", LoggingMiddleware(http.HandlerFunc(s.fulfillment)))
	return mux
}

func (s *server) fulfillment(w http.ResponseWriter, r *http.Request) {
	req, err := unmarshalPayload[model.IntentRequest](r)
	if err != nil {
		handleError(w, http.StatusBadRequest, err)
		return
	}
	if len(req.Inputs) == 0 {
		handleError(w, http.StatusBadRequest, errors.New("no intent in request"))
		return
	}

	input := req.Inputs[0]
	switch input.Intent {
	case model.IntentSync:
		s.sync(w, r, req)
	case model.IntentQuery:
		s.query(w, r, req, input)
	case model.IntentExecute:
		s.execute(w, r, req, input)
	default:
		handleError(w, http.StatusBadRequest, errors.New("unsupported intent: "+input.Intent))
	}
}

func (s *server) sync(w http.ResponseWriter, r *http.Request, req *model.IntentRequest) {
	devices, err := s.smarthome.Devices(r.Context(), nil)
	if err != nil {
		handleError(w, http.StatusInternalServerError, err)
		return
	}

	list := lo.Values(devices)
	sort.Slice(list, func(a, b int) bool { return list[a].ID < list[b].ID })

	writeJSON(w, model.SyncResponse{
		RequestID: req.RequestID,
		Payload: model.SyncPayload{
			AgentUserID: s.agentUserID,
			Devices:     list,
		},
	})
}

func (s *server) query(w http.ResponseWriter, r *http.Request, req *model.IntentRequest, input model.IntentInput) {
	states, err := s.smarthome.States(r.Context(), deviceIDs(input.Payload.Devices))
	if err != nil {
		handleError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, model.QueryResponse{
		RequestID: req.RequestID,
		Payload:   model.QueryPayload{Devices: states},
	})
}

func (s *server) execute(w http.ResponseWriter, r *http.Request, req *model.IntentRequest, input model.IntentInput) {
	var (
		ids   []string
		execs []model.Execution
	)
	for _, command := range input.Payload.Commands {
		ids = append(ids, deviceIDs(command.Devices)...)
		execs = append(execs, command.Execution...)
	}
	ids = lo.Uniq(ids)

	states, merged, err := s.smarthome.Execute(r.Context(), ids, execs)
	if err != nil {
		handleError(w, http.StatusInternalServerError, err)
		return
	}
	s.logger.Debug("applied command set", zap.Any("params", merged), zap.Int("devices", len(states)))

	results := make([]model.CommandResult, 0, len(states))
	for _, id := range lo.Keys(states) {
		state := states[id]
		status := model.StatusSuccess
		if !state.Online {
			status = model.StatusOffline
		}
		results = append(results, model.CommandResult{
			IDs:    []string{id},
			Status: status,
			States: state,
		})
	}
	sort.Slice(results, func(a, b int) bool { return results[a].IDs[0] < results[b].IDs[0] })

	writeJSON(w, model.ExecuteResponse{
		RequestID: req.RequestID,
		Payload:   model.ExecutePayload{Commands: results},
	})
}

func deviceIDs(refs []model.DeviceRef) []string {
	if len(refs) == 0 {
		return nil
	}
	return lo.Map(refs, func(ref model.DeviceRef, _ int) string { return ref.ID })
}

func handleError(w http.ResponseWriter, status int, err error) {
	zap.L().Error("fulfillment request failed", zap.Error(err))
	w.WriteHeader(status)
	_, _ = w.Write([]byte(err.Error()))
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func unmarshalPayload[T any](r *http.Request) (*T, error) {
	var out T
	if err := json.NewDecoder(r.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
