package app

import (
	"database/sql"
	"fmt"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	groupcache "querylens/internal/cache/group"
	"querylens/internal/gateway/config"
	"querylens/internal/gateway/ent"
	auditrepo "querylens/internal/gateway/repository/audit"
	grouprepo "querylens/internal/gateway/repository/group"
	queryrepo "querylens/internal/gateway/repository/query"
	runreportrepo "querylens/internal/gateway/repository/runreport"
)

type gatewayStores struct {
	queries queryrepo.Store
	groups  grouprepo.Store
	audit   auditrepo.Store
	reports runreportrepo.Store
}

func initStores(cfg *config.Config, log *zap.Logger) (*gatewayStores, error) {
	reportStore, err := newReportStore(cfg, log)
	if err != nil {
		return nil, err
	}

	if dsn := strings.TrimSpace(cfg.DatabaseURL); dsn != "" {
		return initPostgresStores(dsn, reportStore, log)
	}
	return initInMemoryStores(reportStore, log), nil
}

func newReportStore(cfg *config.Config, log *zap.Logger) (runreportrepo.Store, error) {
	if cfg.Report.CanUseS3() {
		s3Store, err := runreportrepo.NewS3Store(runreportrepo.S3Config{
			Endpoint:  cfg.Report.Endpoint,
			Region:    cfg.Report.Region,
			AccessKey: cfg.Report.AccessKey,
			SecretKey: cfg.Report.SecretKey,
			Bucket:    cfg.Report.Bucket,
			UseSSL:    cfg.Report.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize report s3 store: %w", err)
		}
		log.Info("run report store: s3",
			zap.String("bucket", cfg.Report.Bucket),
			zap.String("endpoint", cfg.Report.Endpoint))
		return s3Store, nil
	}
	if cfg.Report.Enabled {
		log.Info("run report store: using in-memory fallback (s3 config incomplete)")
	}
	return runreportrepo.NewMemoryStore(), nil
}

func initPostgresStores(dsn string, reports runreportrepo.Store, log *zap.Logger) (*gatewayStores, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))

	log.Info("stores: postgres")
	return &gatewayStores{
		queries: queryrepo.NewPostgresStore(client),
		groups:  groupcache.NewCachedStore(grouprepo.NewPostgresStore(client), groupcache.DefaultCacheConfig()),
		audit:   auditrepo.NewPostgresStore(client),
		reports: reports,
	}, nil
}

func initInMemoryStores(reports runreportrepo.Store, log *zap.Logger) *gatewayStores {
	queryStore := queryrepo.NewMemoryStore()
	groupStore := grouprepo.NewMemoryStore()
	groupStore.Resolve = queryStore.Find

	log.Info("stores: in-memory")
	return &gatewayStores{
		queries: queryStore,
		groups:  groupcache.NewCachedStore(groupStore, groupcache.DefaultCacheConfig()),
		audit:   auditrepo.NewMemoryStore(),
		reports: reports,
	}
}
