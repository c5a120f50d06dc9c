package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/fitzone/memberd/internal/app/api/server"
	"github.com/fitzone/memberd/internal/app/service/auth"
	"github.com/fitzone/memberd/internal/app/service/billing"
	"github.com/fitzone/memberd/internal/app/service/expiry"
	"github.com/fitzone/memberd/internal/app/service/ledger"
	"github.com/fitzone/memberd/internal/app/service/notifylog"
	"github.com/fitzone/memberd/internal/app/service/statistics"
	"github.com/fitzone/memberd/internal/platform/db"
	"github.com/fitzone/memberd/internal/platform/sms"
	"github.com/fitzone/memberd/pkg/config"
	"github.com/fitzone/memberd/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	sms.Module,
	server.Module,
	auth.Module,
	billing.Module,
	ledger.Module,
	notifylog.Module,
	statistics.Module,
	expiry.Module,
)
