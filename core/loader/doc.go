// Package loader provides the feature loading system.
//
// Each feature implements the Feature interface and registers its own routes.
// The Manager keeps features in registration order and loads the enabled ones.
//
//	mgr := loader.NewManager(log)
//	mgr.Register(catalog.NewFeature(svc, log))
//	mgr.Register(integrity.NewFeature(checker, log))
//	if err := mgr.LoadAll(app); err != nil {
//	    log.Fatal("Failed to load features", zap.Error(err))
//	}
package loader
