package router

import "github.com/gin-gonic/gin"

// Registry collects modules: API modules mount under /api, page modules
// at the engine root.
type Registry struct {
	Engine  *gin.Engine
	API     *gin.RouterGroup
	modules []Module
	pages   []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	api := engine.Group("/api")
	return &Registry{Engine: engine, API: api}
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

func (r *Registry) AddPage(mod Module) {
	r.pages = append(r.pages, mod)
}

func (r *Registry) RegisterAll() {
	for _, m := range r.modules {
		m.Register(r.API)
	}
	for _, m := range r.pages {
		m.Register(&r.Engine.RouterGroup)
	}
}
