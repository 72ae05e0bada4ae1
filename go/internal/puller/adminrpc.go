package puller

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"github.com/mcdev12/formulated/go/internal/models"
)

// SyncServiceName is the fully-qualified name of the admin sync service
const SyncServiceName = "formulated.admin.v1.SyncService"

const (
	SyncServiceSyncTeamsProcedure    = "/" + SyncServiceName + "/SyncTeams"
	SyncServiceSyncDriversProcedure  = "/" + SyncServiceName + "/SyncDrivers"
	SyncServiceSyncRacesProcedure    = "/" + SyncServiceName + "/SyncRaces"
	SyncServiceListSyncRunsProcedure = "/" + SyncServiceName + "/ListSyncRuns"
)

type SyncRequest struct {
	// Season defaults to the current year when zero. Ignored by SyncTeams.
	Season int `json:"season,omitempty"`
}

type SyncResponse struct {
	Run *models.SyncRun `json:"run"`
}

type ListSyncRunsRequest struct {
	Kind   models.SyncKind `json:"kind,omitempty"`
	Limit  int             `json:"limit,omitempty"`
	Offset int             `json:"offset,omitempty"`
}

type ListSyncRunsResponse struct {
	Runs []models.SyncRun `json:"runs"`
}

// SyncServiceHandler is implemented by Service
type SyncServiceHandler interface {
	SyncTeams(context.Context, *connect.Request[SyncRequest]) (*connect.Response[SyncResponse], error)
	SyncDrivers(context.Context, *connect.Request[SyncRequest]) (*connect.Response[SyncResponse], error)
	SyncRaces(context.Context, *connect.Request[SyncRequest]) (*connect.Response[SyncResponse], error)
	ListSyncRuns(context.Context, *connect.Request[ListSyncRunsRequest]) (*connect.Response[ListSyncRunsResponse], error)
}

// JSONCodec carries the admin messages as plain JSON. The messages are Go
// structs, so the default protobuf codecs cannot serve them.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (JSONCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// NewSyncServiceHandler builds the HTTP handler for the service and returns
// the path prefix to mount it on.
func NewSyncServiceHandler(svc SyncServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	handlers := map[string]http.Handler{
		SyncServiceSyncTeamsProcedure:    connect.NewUnaryHandler(SyncServiceSyncTeamsProcedure, svc.SyncTeams, opts...),
		SyncServiceSyncDriversProcedure:  connect.NewUnaryHandler(SyncServiceSyncDriversProcedure, svc.SyncDrivers, opts...),
		SyncServiceSyncRacesProcedure:    connect.NewUnaryHandler(SyncServiceSyncRacesProcedure, svc.SyncRaces, opts...),
		SyncServiceListSyncRunsProcedure: connect.NewUnaryHandler(SyncServiceListSyncRunsProcedure, svc.ListSyncRuns, opts...),
	}

	return "/" + SyncServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// SyncServiceClient calls a remote SyncService
type SyncServiceClient struct {
	syncTeams    *connect.Client[SyncRequest, SyncResponse]
	syncDrivers  *connect.Client[SyncRequest, SyncResponse]
	syncRaces    *connect.Client[SyncRequest, SyncResponse]
	listSyncRuns *connect.Client[ListSyncRunsRequest, ListSyncRunsResponse]
}

func NewSyncServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SyncServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &SyncServiceClient{
		syncTeams:    connect.NewClient[SyncRequest, SyncResponse](httpClient, baseURL+SyncServiceSyncTeamsProcedure, opts...),
		syncDrivers:  connect.NewClient[SyncRequest, SyncResponse](httpClient, baseURL+SyncServiceSyncDriversProcedure, opts...),
		syncRaces:    connect.NewClient[SyncRequest, SyncResponse](httpClient, baseURL+SyncServiceSyncRacesProcedure, opts...),
		listSyncRuns: connect.NewClient[ListSyncRunsRequest, ListSyncRunsResponse](httpClient, baseURL+SyncServiceListSyncRunsProcedure, opts...),
	}
}

func (c *SyncServiceClient) SyncTeams(ctx context.Context, req *connect.Request[SyncRequest]) (*connect.Response[SyncResponse], error) {
	return c.syncTeams.CallUnary(ctx, req)
}

func (c *SyncServiceClient) SyncDrivers(ctx context.Context, req *connect.Request[SyncRequest]) (*connect.Response[SyncResponse], error) {
	return c.syncDrivers.CallUnary(ctx, req)
}

func (c *SyncServiceClient) SyncRaces(ctx context.Context, req *connect.Request[SyncRequest]) (*connect.Response[SyncResponse], error) {
	return c.syncRaces.CallUnary(ctx, req)
}

func (c *SyncServiceClient) ListSyncRuns(ctx context.Context, req *connect.Request[ListSyncRunsRequest]) (*connect.Response[ListSyncRunsResponse], error) {
	return c.listSyncRuns.CallUnary(ctx, req)
}

var (
	_ SyncServiceHandler = (*Service)(nil)
	_ SyncServiceHandler = (*SyncServiceClient)(nil)
)
