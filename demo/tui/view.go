package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("📻 Radio Canal Beagle — Noticias Locales"))
	b.WriteString("\n\n")

	// Now playing line
	if m.Playing {
		b.WriteString(StatusStyle.Render(fmt.Sprintf("♪ Sonando: %s — %s", m.Track.Artist, m.Track.Title)))
	} else {
		b.WriteString(InfoStyle.Render("♪ Sin datos de transmisión"))
	}
	b.WriteString("\n\n")

	// Active filters
	filters := fmt.Sprintf("Fuente: %s | Rango: %s", m.selectedSource(), m.selectedRange())
	b.WriteString(InfoStyle.Render(filters))
	b.WriteString("\n\n")

	// Status line
	switch {
	case m.Refreshing:
		b.WriteString(StatusStyle.Render("⏳ Actualizando desde los portales..."))
		b.WriteString("\n\n")
	case m.Loading:
		b.WriteString(StatusStyle.Render("⏳ Cargando..."))
		b.WriteString("\n\n")
	case m.Err != nil:
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("❌ Error: %v", m.Err)))
		b.WriteString("\n\n")
	}

	// Article listing
	if !m.Loading && m.Err == nil {
		b.WriteString(m.renderArticles())
	}

	// Help text
	b.WriteString(InfoStyle.Render("'r' actualizar | 's' fuente | 'f' rango | 'q' salir"))

	return b.String()
}

// renderArticles formats the visible slice of the listing
func (m Model) renderArticles() string {
	if len(m.Articles) == 0 {
		return InfoStyle.Render("No se encontraron noticias") + "\n\n"
	}

	var b strings.Builder
	shown := m.Articles
	if len(shown) > visibleArticles {
		shown = shown[:visibleArticles]
	}

	for _, a := range shown {
		b.WriteString(HighlightStyle.Render(a.Source))
		b.WriteString(" " + a.Title + "\n")
		b.WriteString(InfoStyle.Render("   "+a.PubDate) + "\n")
		if a.Description != "" {
			b.WriteString(InfoStyle.Render("   "+a.Description) + "\n")
		}
		b.WriteString("\n")
	}

	if len(m.Articles) > visibleArticles {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("... y %d más", len(m.Articles)-visibleArticles)))
		b.WriteString("\n\n")
	}
	return b.String()
}
