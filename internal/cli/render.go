// Package cli renders game state for the terminal.
package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"glory-to-rome-backend/internal/game"
	"glory-to-rome-backend/internal/game/card"
)

const fallbackWidth = 100

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	leaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	endStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	playerBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	materialColors = map[card.Material]string{
		card.Rubble:   "180",
		card.Wood:     "70",
		card.Concrete: "250",
		card.Brick:    "167",
		card.Stone:    "109",
		card.Marble:   "255",
	}
)

// DetectWidth reads the terminal width, falling back when stdout is
// not a terminal.
func DetectWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

// Render draws the full game state at the given width.
func Render(s *game.State, width int) string {
	if width <= 0 {
		width = fallbackWidth
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Glory to Rome — turn %d", s.Turn)))
	b.WriteByte('\n')
	b.WriteString(renderCommons(s))
	b.WriteByte('\n')

	boxWidth := width/len(s.Players) - 2
	if boxWidth < 24 {
		boxWidth = 24
	}
	boxes := make([]string, len(s.Players))
	for i := range s.Players {
		boxes[i] = renderPlayer(s, i, boxWidth)
	}
	if lipgloss.Width(strings.Join(boxes, "")) <= width {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, boxes...))
	}
	b.WriteByte('\n')

	if s.Finished {
		b.WriteString(renderResult(s))
	} else {
		b.WriteString(renderExpected(s))
	}
	return b.String()
}

func renderCommons(s *game.State) string {
	var parts []string
	parts = append(parts, labelStyle.Render("pool: ")+cardList(s.Pool.Cards()))
	parts = append(parts, labelStyle.Render(fmt.Sprintf("library: %d", s.Library.Len())))
	parts = append(parts, labelStyle.Render(fmt.Sprintf("jacks: %d", s.JackPile.Len())))

	materials := card.Materials()
	sites := make([]string, 0, len(materials))
	for _, m := range materials {
		sites = append(sites, fmt.Sprintf("%s %d", strings.ToLower(string(m))[:2], s.Foundations[m]))
	}
	parts = append(parts, labelStyle.Render("sites: ")+strings.Join(sites, " "))
	return strings.Join(parts, "   ")
}

func renderPlayer(s *game.State, idx, width int) string {
	p := s.Players[idx]
	name := p.Name
	if idx == s.Leader {
		name = leaderStyle.Render(name + " ♛")
	}

	lines := []string{
		name,
		row("influence", fmt.Sprintf("%d", p.InfluencePoints())),
		row("hand", cardList(p.Hand.Cards())),
		row("stockpile", cardList(p.Stockpile.Cards())),
		row("clientele", cardList(p.Clientele.Cards())),
		row("vault", fmt.Sprintf("%d cards", p.Vault.Len())),
	}
	if p.Camp.Len() > 0 {
		lines = append(lines, row("camp", cardList(p.Camp.Cards())))
	}
	for _, bld := range p.Buildings {
		mark := " "
		if bld.Complete {
			mark = "✓"
		}
		lines = append(lines, fmt.Sprintf("%s %s %d/%d",
			mark, colorCard(bld.Foundation), bld.Materials.Len(), bld.Threshold()))
	}
	return playerBox.Width(width).Render(strings.Join(lines, "\n"))
}

func row(label, value string) string {
	if value == "" {
		value = "—"
	}
	return labelStyle.Render(label+": ") + value
}

func renderExpected(s *game.State) string {
	top := len(s.Pending) - 1
	if top < 0 {
		return ""
	}
	f := s.Pending[top]
	return frameStyle.Render(fmt.Sprintf("waiting on %s: %s", s.Players[f.Player].Name, f.Kind))
}

func renderResult(s *game.State) string {
	type entry struct {
		name  string
		score int
	}
	rows := make([]entry, len(s.Players))
	for i, p := range s.Players {
		rows[i] = entry{p.Name, s.Scores[i]}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].score > rows[j].score })

	var b strings.Builder
	b.WriteString(endStyle.Render("🎉 Game over — " + s.EndReason))
	b.WriteByte('\n')
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s: %d\n", r.name, r.score))
	}
	winners := make([]string, len(s.Winners))
	for i, w := range s.Winners {
		winners[i] = s.Players[w].Name
	}
	b.WriteString(endStyle.Render("winner: " + strings.Join(winners, ", ")))
	return b.String()
}

func cardList(ids []card.ID) string {
	if len(ids) == 0 {
		return ""
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = colorCard(id)
	}
	return strings.Join(out, " ")
}

func colorCard(id card.ID) string {
	if id.IsJack() {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("93")).Render("Jack")
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(materialColors[id.Material()]))
	return style.Render(id.Name)
}
