package main

import (
	"fmt"
	"net/http"

	"github.com/mchmarny/navmenu/pkg/definition"
	"github.com/mchmarny/navmenu/pkg/menu"
)

// loadBuilder returns a builder for the definition in file, or for the demo
// menu when file is empty. The definition is read once and a new tree is
// built on every call.
func loadBuilder(file string) (menu.Builder, error) {
	if file == "" {
		return func(*http.Request) *menu.Menu { return demoMenu() }, nil
	}

	d, err := definition.Load(file)
	if err != nil {
		return nil, err
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	return func(*http.Request) *menu.Menu {
		m, err := d.Build()
		if err != nil {
			return nil
		}
		return m
	}, nil
}

// demoMenu is served when no definition file is given.
func demoMenu() *menu.Menu {
	return menu.New().
		AddClass("nav").
		Link("/", "Home").
		Link("/about", "About").
		Submenu(`<span class="header">Products</span>`, menu.New().
			AddParentClass("dropdown").
			Link("/products/menus", "Menus").
			Link("/products/links", "Links")).
		HTML(`<span class="divider"></span>`).
		Link("/contact", "Contact")
}
