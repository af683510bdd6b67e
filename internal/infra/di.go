package infra

import (
	"context"

	"github.com/google/wire"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"github.com/fedcourts/docket-engine/internal/adapters/primary/http/controller"
	"github.com/fedcourts/docket-engine/internal/adapters/secondary/database/postgres"
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
	smtpnotification "github.com/fedcourts/docket-engine/internal/adapters/secondary/notification/smtp"
	smsnotification "github.com/fedcourts/docket-engine/internal/adapters/secondary/notification/sms"
	s3storage "github.com/fedcourts/docket-engine/internal/adapters/secondary/storage/s3"
	"github.com/fedcourts/docket-engine/internal/core/port"
	"github.com/fedcourts/docket-engine/internal/core/service"
	"github.com/fedcourts/docket-engine/internal/core/usecase"
	"github.com/fedcourts/docket-engine/internal/infra/config"
	"github.com/fedcourts/docket-engine/internal/infra/scheduler"
	"github.com/fedcourts/docket-engine/internal/infra/server"
)

// ProviderSet is the Wire provider set for infrastructure components.
var ProviderSet = wire.NewSet(
	// Configuration
	config.Load,

	// Database
	ProvideDBPool,

	// Repositories - Docket
	courtrepo.New,
	caserepo.New,
	docketentryrepo.New,
	documentrepo.New,
	documenteventrepo.New,
	filinguploadrepo.New,
	partyrepo.New,
	partyrepo.NewRepresentationRepository,
	servicerecordrepo.New,
	nefrepo.New,
	ProvideFilingRepository,

	// Storage
	ProvideStorageAdapter,

	// Notification
	ProvideEmailSender,
	ProvideSMSSender,

	// Background job queue (NEF delivery)
	ProvideRiverClient,

	// Services
	service.NewTenantService,
	service.NewRoleResolverService,
	service.NewCaseService,
	service.NewDocketEntryService,
	service.NewDocumentService,
	service.NewFilingService,
	service.NewPartyService,
	service.NewServiceRecordService,
	service.NewNefService,
	service.NewEventService,
	service.NewTimelineService,
	service.NewUploadService,

	// Controllers
	controller.NewTenantController,
	controller.NewCaseController,
	controller.NewDocketEntryController,
	controller.NewDocumentController,
	controller.NewUploadController,
	controller.NewFilingController,
	controller.NewPartyController,
	controller.NewServiceRecordController,
	controller.NewEventController,
	controller.NewTimelineController,
	ProvideControllers,

	// HTTP Server
	server.NewHTTPServer,

	// Background Scheduler
	ProvideScheduler,

	// Initializer
	NewInitializer,
)

// ProvideDBPool creates the database connection pool.
func ProvideDBPool(cfg *config.Config) (*pgxpool.Pool, error) {
	return postgres.NewPool(context.Background(), cfg.Database)
}

// ProvideStorageAdapter creates the S3-compatible storage adapter used for
// filed documents and staged uploads.
func ProvideStorageAdapter(cfg *config.Config) (port.StorageAdapter, error) {
	return s3storage.New(&s3storage.Config{
		Bucket:          cfg.Storage.Bucket,
		Region:          cfg.Storage.Region,
		Endpoint:        cfg.Storage.Endpoint,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		UsePathStyle:    cfg.Storage.UsePathStyle,
	})
}

// ProvideEmailSender creates the SMTP email sender used for NEF delivery.
func ProvideEmailSender(cfg *config.Config) port.EmailSender {
	return smtpnotification.New(cfg.SMTP)
}

// ProvideSMSSender creates the SMS gateway sender used for NEF delivery.
func ProvideSMSSender(cfg *config.Config) port.SMSSender {
	return smsnotification.New(cfg.SMS)
}

// ProvideRiverClient builds the River job client and registers the NEF
// delivery worker. The filing repository enqueues jobs onto this client
// from within the same transaction that submits a filing.
func ProvideRiverClient(
	cfg *config.Config,
	pool *pgxpool.Pool,
	nefs port.NefRepository,
	email port.EmailSender,
	sms port.SMSSender,
) (*river.Client[pgx.Tx], error) {
	return jobs.NewClient(pool, cfg.Jobs, nefs, email, sms)
}

// ProvideFilingRepository creates the filing repository, wiring in the River
// client so filing submission can enqueue NEF delivery transactionally.
func ProvideFilingRepository(pool *pgxpool.Pool, riverClient *river.Client[pgx.Tx]) port.FilingRepository {
	return filingrepo.New(pool, riverClient)
}

// ProvideControllers bundles every primary HTTP controller for NewHTTPServer.
func ProvideControllers(
	tenant *controller.TenantController,
	caseCtrl *controller.CaseController,
	docketEntry *controller.DocketEntryController,
	document *controller.DocumentController,
	upload *controller.UploadController,
	filing *controller.FilingController,
	party *controller.PartyController,
	serviceRecord *controller.ServiceRecordController,
	event *controller.EventController,
	timeline *controller.TimelineController,
) *server.Controllers {
	return &server.Controllers{
		Tenant:        tenant,
		Case:          caseCtrl,
		DocketEntry:   docketEntry,
		Document:      document,
		Upload:        upload,
		Filing:        filing,
		Party:         party,
		ServiceRecord: serviceRecord,
		Event:         event,
		Timeline:      timeline,
	}
}

// ProvideScheduler creates the background scheduler and registers the
// staged-upload expiry sweep alongside it.
func ProvideScheduler(cfg *config.Config, uploadUC usecase.UploadUseCase) *scheduler.Scheduler {
	s := scheduler.New(cfg.Jobs.SchedulerEnabled)
	s.RegisterJob("expire-stale-uploads", cfg.Jobs.UploadExpiryIntervalDuration(), func(ctx context.Context) error {
		_, err := uploadUC.ExpireStale(ctx, cfg.Jobs.UploadExpiryBatchSize)
		return err
	})
	return s
}
