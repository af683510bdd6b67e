//go:build integration

package testhelper

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/controller"
	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/middleware"
	"github.com/fedcourts/docket-engine/internal/adapters/secondary/database/postgres/caserepo"
	"github.com/fedcourts/docket-engine/internal/adapters/secondary/database/postgres/courtrepo"
	"github.com/fedcourts/docket-engine/internal/adapters/secondary/database/postgres/docketentryrepo"
	"github.com/fedcourts/docket-engine/internal/adapters/secondary/database/postgres/documenteventrepo"
	"github.com/fedcourts/docket-engine/internal/adapters/secondary/database/postgres/documentrepo"
	"github.com/fedcourts/docket-engine/internal/adapters/secondary/database/postgres/filingrepo"
	"github.com/fedcourts/docket-engine/internal/adapters/secondary/database/postgres/filinguploadrepo"
	"github.com/fedcourts/docket-engine/internal/adapters/secondary/database/postgres/nefrepo"
	"github.com/fedcourts/docket-engine/internal/adapters/secondary/database/postgres/partyrepo"
	"github.com/fedcourts/docket-engine/internal/adapters/secondary/database/postgres/servicerecordrepo"
	"github.com/fedcourts/docket-engine/internal/adapters/secondary/jobs"
	"github.com/fedcourts/docket-engine/internal/core/port"
	"github.com/fedcourts/docket-engine/internal/core/service"
	"github.com/fedcourts/docket-engine/internal/infra/config"
	"github.com/fedcourts/docket-engine/internal/infra/server"
)

// fakeStorage is an in-memory port.StorageAdapter for tests that don't carry
// a MinIO or LocalStack sidecar.
type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(_ context.Context, key string, data []byte, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	return nil
}

func (f *fakeStorage) Download(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.objects[key], nil
}

func (f *fakeStorage) GetURL(_ context.Context, key string) (string, error) {
	return "https://test-storage.local/" + key, nil
}

func (f *fakeStorage) PresignUpload(_ context.Context, key, _ string, _ time.Duration) (string, error) {
	return "https://test-storage.local/presigned/" + key, nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) Exists(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeStorage) HeadObject(_ context.Context, key string) (*port.ObjectMetadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data := f.objects[key]
	return &port.ObjectMetadata{ETag: "test-etag", ContentSize: int64(len(data))}, nil
}

// fakeEmailSender and fakeSMSSender record NEF deliveries without touching a
// real SMTP relay or SMS gateway, so the river worker has somewhere to land.
type fakeEmailSender struct {
	mu   sync.Mutex
	sent []*port.NotificationRequest
}

func (f *fakeEmailSender) Send(_ context.Context, req *port.NotificationRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, req)
	return nil
}

type fakeSMSSender struct {
	mu   sync.Mutex
	sent []*port.SMSRequest
}

func (f *fakeSMSSender) Send(_ context.Context, req *port.SMSRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, req)
	return nil
}

// TestServer wraps an httptest.Server with helper methods for E2E testing.
type TestServer struct {
	Server      *httptest.Server
	Engine      *gin.Engine
	Pool        *pgxpool.Pool
	riverClient *river.Client[pgx.Tx]
	t           *testing.T
}

// NewTestServer creates a test HTTP server with real repositories backed by
// the test database pool, and fake storage/notification adapters in place of
// S3 and SMTP/SMS.
func NewTestServer(t *testing.T, pool *pgxpool.Pool) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	courtRepo := courtrepo.New(pool)
	caseRepo := caserepo.New(pool)
	entryRepo := docketentryrepo.New(pool)
	documentRepo := documentrepo.New(pool)
	eventRepo := documenteventrepo.New(pool)
	uploadRepo := filinguploadrepo.New(pool)
	partyRepo := partyrepo.New(pool)
	repRepo := partyrepo.NewRepresentationRepository(pool)
	recordRepo := servicerecordrepo.New(pool)
	nefRepo := nefrepo.New(pool)

	storage := newFakeStorage()
	email := &fakeEmailSender{}
	sms := &fakeSMSSender{}

	jobsCfg := config.JobsConfig{MaxWorkers: 5, MaxAttempts: 3}
	riverClient, err := jobs.NewClient(pool, jobsCfg, nefRepo, email, sms)
	if err != nil {
		t.Fatalf("building test river client: %v", err)
	}
	if err := riverClient.Start(ctx); err != nil {
		t.Fatalf("starting test river client: %v", err)
	}
	t.Cleanup(func() { _ = riverClient.Stop(ctx) })

	filingRepo := filingrepo.New(pool, riverClient)

	tenantSvc := service.NewTenantService(courtRepo)
	roleResolver := service.NewRoleResolverService()
	caseSvc := service.NewCaseService(caseRepo)
	entrySvc := service.NewDocketEntryService(entryRepo, caseRepo)
	documentSvc := service.NewDocumentService(documentRepo, eventRepo, uploadRepo, entryRepo, storage)
	filingSvc := service.NewFilingService(filingRepo, caseRepo, uploadRepo, partyRepo, repRepo)
	partySvc := service.NewPartyService(partyRepo, repRepo)
	recordSvc := service.NewServiceRecordService(recordRepo, partyRepo)
	nefSvc := service.NewNefService(nefRepo)
	eventSvc := service.NewEventService(entrySvc, filingSvc, documentSvc)
	timelineSvc := service.NewTimelineService(entryRepo, eventRepo, documentRepo, caseRepo, partyRepo)
	uploadSvc := service.NewUploadService(uploadRepo, storage)

	controllers := &server.Controllers{
		Tenant:        controller.NewTenantController(tenantSvc),
		Case:          controller.NewCaseController(caseSvc),
		DocketEntry:   controller.NewDocketEntryController(entrySvc),
		Document:      controller.NewDocumentController(documentSvc, eventRepo, storage),
		Upload:        controller.NewUploadController(uploadSvc),
		Filing:        controller.NewFilingController(filingSvc),
		Party:         controller.NewPartyController(partySvc),
		ServiceRecord: controller.NewServiceRecordController(recordSvc, nefSvc),
		Event:         controller.NewEventController(eventSvc),
		Timeline:      controller.NewTimelineController(timelineSvc),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	// Empty auth config puts JWTAuth in dev mode (ParseUnverified), so the
	// HS256 tokens minted by GenerateTestToken are accepted without a JWKS.
	authCfg := &config.AuthConfig{}

	v1 := engine.Group("/api/v1")
	v1.Use(middleware.Operation())
	v1.Use(middleware.JWTAuth(authCfg))
	{
		controllers.Tenant.RegisterRoutes(v1)

		scoped := v1.Group("")
		scoped.Use(middleware.TenantGuard(tenantSvc))
		{
			controllers.Case.RegisterRoutes(scoped, roleResolver)
			controllers.DocketEntry.RegisterRoutes(scoped, roleResolver)
			controllers.Document.RegisterRoutes(scoped, roleResolver)
			controllers.Upload.RegisterRoutes(scoped, roleResolver)
			controllers.Filing.RegisterRoutes(scoped, roleResolver)
			controllers.Party.RegisterRoutes(scoped, roleResolver)
			controllers.ServiceRecord.RegisterRoutes(scoped, roleResolver)
			controllers.Event.RegisterRoutes(scoped, roleResolver)
			controllers.Timeline.RegisterRoutes(scoped, roleResolver)
		}
	}

	httpServer := httptest.NewServer(engine)
	t.Cleanup(func() { httpServer.Close() })

	return &TestServer{
		Server:      httpServer,
		Engine:      engine,
		Pool:        pool,
		riverClient: riverClient,
		t:           t,
	}
}

// URL returns the base URL of the test server.
func (ts *TestServer) URL() string {
	return ts.Server.URL
}

// Close closes the test server.
func (ts *TestServer) Close() {
	ts.Server.Close()
}

