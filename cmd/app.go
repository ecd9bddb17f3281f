package cmd

import (
	"fmt"
	"time"

	"catalog-builder/core/config"
	"catalog-builder/core/database"
	"catalog-builder/core/design"
	"catalog-builder/core/export"
	"catalog-builder/core/logger"
	"catalog-builder/core/reconcile"
	"catalog-builder/core/records"
	"catalog-builder/core/storage"
	"catalog-builder/feature/catalog"
	"catalog-builder/feature/integrity"
	"catalog-builder/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds the components shared by every command.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    storage.Client
	db       *gorm.DB
	design   *design.Client
	records  records.Source
	exporter *export.Exporter
	mapping  reconcile.FieldMapping
}

// newApp loads the configuration and wires the collaborators.
func newApp() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	var db *gorm.DB
	if cfg.Database.Enabled {
		db, err = database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
	}

	mapping, err := reconcile.LoadFieldMapping(cfg.Records.MappingFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load field mapping: %w", err)
	}

	source, err := records.New(cfg.Records, store, cfg.Storage.Bucket, db)
	if err != nil {
		return nil, err
	}

	designClient := design.NewClient(cfg.Design)
	downloader := export.NewHTTPDownloader(time.Duration(cfg.Design.TimeoutSeconds)*time.Second, cfg.Export.MaxPageBytes)
	exporter := export.NewExporter(designClient, downloader, export.PDFMerger{}, cfg.Export.Concurrency, logg)

	return &app{
		cfg:      cfg,
		logger:   logg,
		store:    store,
		db:       db,
		design:   designClient,
		records:  source,
		exporter: exporter,
		mapping:  mapping,
	}, nil
}

func (a *app) catalogService() *catalog.Service {
	return catalog.NewService(catalog.Options{
		Documents:  a.design,
		Records:    a.records,
		Reconciler: reconcile.NewReconciler(a.mapping, a.logger),
		Exporter:   a.exporter,
		Storage:    a.store,
		Bucket:     a.cfg.Storage.Bucket,
		Page:       a.cfg.Design.Page,
		Export:     a.cfg.Export,
		Logger:     a.logger,
	})
}

func (a *app) integrityService() *integrity.Service {
	var recordObject string
	var objects []string
	if a.cfg.Records.Source == records.SourceObject {
		recordObject = a.cfg.Records.Object
		objects = append(objects, recordObject)
	}

	return integrity.NewService(integrity.Options{
		Storage: a.store,
		Bucket:  a.cfg.Storage.Bucket,
		Folders: checks.RequiredFolders(a.cfg.Export.Prefix, recordObject),
		Objects: objects,
		Records: a.records,
		Design:  a.design,
		Page:    a.cfg.Design.Page,
		Frames: reconcile.SpecialFrames{
			Cover: export.CoverFrameName,
			TOC:   export.TOCFrameName,
			Back:  a.cfg.Export.BackFrame,
		},
		Logger: a.logger,
	})
}
