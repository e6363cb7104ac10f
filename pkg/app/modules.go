package app

// Compiled-in modules. Each registers itself with core in init.
import (
	_ "github.com/flemzord/slackkit/internal/cron"
	_ "github.com/flemzord/slackkit/internal/gateway"
	_ "github.com/flemzord/slackkit/modules/channel/slack"
)
