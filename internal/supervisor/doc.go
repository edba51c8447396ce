// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

/*
Package supervisor runs ventureboard's long-lived services under suture v4.

	RootSupervisor ("ventureboard")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── CacheJanitorService (memory cache backend only)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with suture's backoff. The layers count failures
independently, so a janitor crash never restarts the HTTP server.

Supervisor events (service start, failure, restart, backoff) are logged
through log/slog via sutureslog, using the zerolog-backed handler from
internal/logging:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, addr, cfg.Server.ShutdownTimeout))
	errCh := tree.ServeBackground(ctx)

Cancel ctx to stop the tree. UnstoppedServiceReport lists services that did
not stop within TreeConfig.ShutdownTimeout.
*/
package supervisor
