package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/rizkyamp/go-store-api/config"
	"github.com/rizkyamp/go-store-api/pkg/blacklist"
	"github.com/rizkyamp/go-store-api/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules wire themselves from these singletons at startup; the
// components themselves are passed by reference, never re-looked-up.

var (
	cfg        *config.Config
	logger     *logrus.Logger
	pgPool     *pgxpool.Pool
	jwtManager *helpers.JWTManager
	revoked    *blacklist.Registry
)

func SetConfig(c *config.Config)         { cfg = c }
func GetConfig() *config.Config          { return cfg }
func SetLogger(l *logrus.Logger)         { logger = l }
func GetLogger() *logrus.Logger          { return logger }
func SetPGPool(p *pgxpool.Pool)          { pgPool = p }
func GetPGPool() *pgxpool.Pool           { return pgPool }
func SetJWT(m *helpers.JWTManager)       { jwtManager = m }
func GetJWT() *helpers.JWTManager        { return jwtManager }
func SetBlacklist(r *blacklist.Registry) { revoked = r }
func GetBlacklist() *blacklist.Registry  { return revoked }
