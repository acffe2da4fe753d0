package main

import (
	"github.com/geekshirt/order-service/internal/app"
	"github.com/geekshirt/order-service/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
