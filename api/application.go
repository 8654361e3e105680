package api

import (
	"github.com/TaddsTechnology/huematch-api/datastore"
	"github.com/TaddsTechnology/huematch-api/recommend"
	"github.com/TaddsTechnology/huematch-api/scheduler"
)

type Config struct {
	HTTPPort           string
	DatabaseType       string
	DatabaseUser       string
	DatabasePassword   string
	DatabaseHost       string
	DatabaseName       string
	SSLMode            string
	JwtSecret          string
	JwtAccessDuration  int // seconds
	JwtDomain          string
	AllowedOrigins     []string
	PrimarySourceURL   string
	SecondarySourceURL string
	DevMode            bool
}

type Application struct {
	Config       Config
	UserRepo     datastore.UserRepository
	AnalysisRepo datastore.AnalysisRepository
	Recommender  *recommend.Orchestrator
	SourceHealth *scheduler.Monitor
}
