package app

import (
	"context"
	"log"
	"time"

	"github.com/akinlade-dev/Extracta/internal/config"
	"github.com/akinlade-dev/Extracta/internal/core/archive"
	db "github.com/akinlade-dev/Extracta/internal/core/database"
	"github.com/akinlade-dev/Extracta/internal/core/objectstore"
	"github.com/akinlade-dev/Extracta/internal/core/textextract"
)

type App struct {
	DBClient     db.DbClient
	ObjectClient objectstore.ObjectClient
	Archiver     archive.Archiver
	Server       *Server
}

// NewApp wires the service. The database and object store are optional; when
// neither is configured the service runs extraction-only and skips archiving.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	appCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	var dbClient db.DbClient
	if cfg.DatabaseURL != "" {
		client, err := db.NewDatabaseClient(appCtx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		dbClient = client
		log.Println("Database initialized and ready.")
	} else {
		log.Println("DATABASE_URL not set; extraction records will not be persisted.")
	}

	var objClient objectstore.ObjectClient
	if cfg.AwsAccessKey != "" && cfg.AwsSecretKey != "" {
		client, err := objectstore.NewS3Client(appCtx, cfg)
		if err != nil {
			return nil, err
		}
		objClient = client
		log.Println("Object client initialized and ready.")
	} else {
		log.Println("AWS credentials not set; uploaded files will not be archived.")
	}

	var archiver archive.Archiver
	if dbClient != nil || objClient != nil {
		recorder := archive.NewRecorder(dbClient, objClient)
		recorder.Start(ctx, cfg.ArchiveWorkers)
		archiver = recorder
	}

	textExtractor := textextract.NewDocconvExtractor()

	server := NewServer(cfg, textExtractor, archiver, dbClient)

	return &App{
		DBClient:     dbClient,
		ObjectClient: objClient,
		Archiver:     archiver,
		Server:       server,
	}, nil
}

func (a *App) Close() {
	if a.DBClient != nil {
		_ = a.DBClient.Close()
	}
}
