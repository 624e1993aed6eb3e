package tasks

import (
	"github.com/futurehomeno/cliffhanger/adapter"
	"github.com/futurehomeno/cliffhanger/adapter/service/outbinswitch"
	"github.com/futurehomeno/cliffhanger/app"
	"github.com/futurehomeno/cliffhanger/lifecycle"
	"github.com/futurehomeno/cliffhanger/task"

	"github.com/futurehomeno/edge-qbittorrent-adapter/internal/config"
)

// New returns a set of background tasks of an application.
func New(
	cfgSrv *config.Service,
	appLifecycle *lifecycle.Lifecycle,
	application app.App,
	ad adapter.Adapter,
) []*task.Task {
	return task.Combine[[]*task.Task](
		app.TaskApp(application, appLifecycle),
		adapter.TaskAdapter(ad, cfgSrv.GetPollingInterval()),
		[]*task.Task{
			outbinswitch.TaskReporting(ad, cfgSrv.GetPollingInterval(), task.WhenAppIsConnected(appLifecycle)),
		},
	)
}
