// Package web provides the HTTP server for the edu-center backend:
// routing, sessions, and background job scheduling.
package web

import (
	"context"
	"net"
	"net/http"
	"strconv"

	"edu-center/config"
	"edu-center/logger"
	"edu-center/storage"
	"edu-center/util/common"
	"edu-center/web/controller"
	"edu-center/web/job"
	"edu-center/web/token"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// Server is the edu-center web server with its controllers and scheduled
// jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	tokenService *token.Service
	store        storage.Store

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = logWriter{}
		gin.DefaultErrorWriter = logWriter{}
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	sessionStore := cookie.NewStore([]byte(config.GetSessionSecret()))
	basePath := config.GetBasePath()

	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(sessions.Sessions("edu-center", sessionStore))

	storageCfg, err := config.GetStorageConfig()
	if err != nil {
		return nil, err
	}
	s.store, err = storage.New(storageCfg)
	if err != nil {
		return nil, err
	}
	if storageCfg.Backend == "local" {
		engine.Static(basePath+"media", storageCfg.MediaDir)
	}

	s.tokenService = token.NewService()

	g := engine.Group(basePath)
	controller.NewAuthController(g, s.tokenService)
	controller.NewUserController(g, s.tokenService, s.store)
	controller.NewTeacherController(g, s.tokenService, s.store)
	controller.NewCertificateController(g, s.tokenService, s.store)
	controller.NewCourseController(g, s.tokenService, s.store)
	controller.NewCategoryController(g, s.tokenService)
	controller.NewFaqController(g, s.tokenService)
	controller.NewReviewController(g, s.tokenService)
	controller.NewApplicationController(g, s.tokenService)
	controller.NewArticleController(g, s.tokenService, s.store)
	controller.NewDiscountController(g, s.tokenService)

	return engine, nil
}

func (s *Server) startTask() {
	// expired blacklist rows serve no purpose once their token would have
	// died anyway
	s.cron.AddJob("@hourly", job.NewRevokedTokenCleanupJob())
}

func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			s.Stop()
		}
	}()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	s.cron = cron.New()
	s.startTask()
	s.cron.Start()

	listenAddr := net.JoinHostPort("", strconv.Itoa(config.GetListenPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler: engine,
	}

	go func() {
		defer common.Recover("web server crashed")
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("web server error:", err)
		}
	}()
	logger.Infof("web server running on %s", listener.Addr())

	return nil
}

func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}

	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(s.ctx)
		if err != nil {
			return err
		}
	}
	if s.listener != nil {
		err = s.listener.Close()
		if err != nil && err != net.ErrClosed {
			return err
		}
	}
	return nil
}

type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	logger.Debug(string(p))
	return len(p), nil
}
