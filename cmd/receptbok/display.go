package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ochairo/receptbok/internal/domain/entities"
	"github.com/ochairo/receptbok/internal/domain/interfaces/services"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	indexStyle   = lipgloss.NewStyle().Faint(true)
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// renderRecipe renders one recipe for reading
func renderRecipe(r *entities.Recipe) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(r.Name))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Ingredienser"))
	b.WriteString("\n")
	if len(r.Ingredients) == 0 {
		b.WriteString("  -\n")
	}
	for _, ing := range r.Ingredients {
		b.WriteString("  • " + ing.String() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Instruktioner"))
	b.WriteString("\n")
	if len(r.Instructions) == 0 {
		b.WriteString("  -\n")
	}
	for i, line := range r.Instructions {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, line)
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// renderHits renders an indexed list of recipe names
func renderHits(hits []services.SearchHit) string {
	var b strings.Builder
	for _, h := range hits {
		fmt.Fprintf(&b, "%s %s\n", indexStyle.Render(fmt.Sprintf("%3d", h.Index)), h.Recipe.Name)
	}
	return b.String()
}
