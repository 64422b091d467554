package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/navigation"
	"github.com/alexisbeaulieu97/folio/internal/ui/theme"
)

const (
	pathWork    = "/"
	pathAbout   = "/about"
	pathNotes   = "/notes"
	pathNeurons = "/neurons"
	pathContact = "/contact"
)

// Links are the navbar entries in display order.
var Links = []navigation.NavLink{
	{Name: "Work", Path: pathWork},
	{Name: "About", Path: pathAbout},
	{Name: "Notes", Path: pathNotes},
	{Name: "My Neurons", Path: pathNeurons},
	{Name: "Contact", Path: pathContact},
}

const (
	pagePadding = 2
	cardGap     = 2
	wideWidth   = 120
	mediumWidth = 80
)

type pageContext struct {
	styles   theme.Styles
	content  *content.Content
	width    int
	query    string
	form     *contactForm
	markdown *markdownCache
	profile  termenv.Profile
}

func (c pageContext) innerWidth() int {
	w := c.width - 2*pagePadding
	if w < 20 {
		w = 20
	}
	return w
}

func renderPage(path string, ctx pageContext) block {
	var body block
	switch path {
	case pathWork:
		body = workPage(ctx)
	case pathAbout:
		body = aboutPage(ctx)
	case pathNotes:
		body = notesPage(ctx)
	case pathNeurons:
		body = neuronsPage(ctx)
	case pathContact:
		body = contactPage(ctx)
	default:
		body = textBlock(ctx.styles.Muted.Render("Nothing here."))
	}
	return body.indent(pagePadding, 1)
}

func hero(s theme.Styles, h content.Hero, width int) block {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	title := textBlock(center.Render(s.HeroTitle.Render(h.Title)))
	if h.Subtitle == "" {
		return column(title, spacer(1))
	}
	sub := textBlock(center.Render(s.HeroSubtitle.Render(wrap(h.Subtitle, min(width, 72)))))
	return column(title, spacer(1), sub, spacer(1))
}

func workPage(ctx pageContext) block {
	c, s, w := ctx.content, ctx.styles, ctx.innerWidth()

	items := make([]string, len(c.Projects))
	for i, p := range c.Projects {
		items[i] = searchText(p.Title, p.Description, strings.Join(p.Tags, " "))
	}
	idx := filterIndices(ctx.query, items)

	cols := 1
	if ctx.width >= wideWidth {
		cols = 3
	}
	cards := grid(w, cols, len(idx), func(i, cw int) block {
		return projectCard(s, c.Projects[idx[i]], cw)
	})

	return column(hero(s, c.Heroes.Work, w), filterSummary(s, ctx.query, len(idx), len(items)), cards)
}

func notesPage(ctx pageContext) block {
	c, s, w := ctx.content, ctx.styles, ctx.innerWidth()

	items := make([]string, len(c.Notes))
	for i, n := range c.Notes {
		items[i] = searchText(n.Title, n.Description)
	}
	idx := filterIndices(ctx.query, items)

	cards := grid(w, responsiveColumns(ctx.width), len(idx), func(i, cw int) block {
		n := c.Notes[idx[i]]
		return card(s, cw,
			textBlock(s.CardTitle.Render(wrap(n.Title, cw-4))),
			textBlock(s.CardBody.Render(wrap(n.Description, cw-4))),
			spacer(1),
			linkLine(s, "Read Note", n.Link, cw-4),
		)
	})

	return column(hero(s, c.Heroes.Notes, w), filterSummary(s, ctx.query, len(idx), len(items)), cards)
}

func neuronsPage(ctx pageContext) block {
	c, s, w := ctx.content, ctx.styles, ctx.innerWidth()

	items := make([]string, len(c.Neurons))
	for i, n := range c.Neurons {
		items[i] = searchText(n.Title, n.Description)
	}
	idx := filterIndices(ctx.query, items)

	cards := grid(w, responsiveColumns(ctx.width), len(idx), func(i, cw int) block {
		n := c.Neurons[idx[i]]
		return card(s, cw,
			textBlock(s.Badge.Render("◉")),
			textBlock(s.CardTitle.Render(wrap(n.Title, cw-4))),
			textBlock(s.CardBody.Render(wrap(n.Description, cw-4))),
		)
	})

	return column(hero(s, c.Heroes.Neurons, w), filterSummary(s, ctx.query, len(idx), len(items)), cards)
}

func aboutPage(ctx pageContext) block {
	c, s, w := ctx.content, ctx.styles, ctx.innerWidth()

	bio := ctx.markdown.render(c.Owner.Bio, s.GlamourStyle(), w, ctx.profile)

	parts := []block{
		textBlock(s.HeroTitle.Render(c.Heroes.About.Title)),
		textBlock(bio),
		linkLine(s, "Download Resume", c.Owner.Resume, w),
	}

	if len(c.Education) > 0 {
		parts = append(parts, textBlock(s.Section.Render("Education")))
		for _, e := range c.Education {
			parts = append(parts, card(s, w,
				textBlock(s.CardTitle.Render(wrap(e.Degree, w-4))),
				textBlock(s.CardBody.Render(e.Institution)),
				textBlock(s.Muted.Render(e.Period)),
			))
		}
	}

	if len(c.Experience) > 0 {
		parts = append(parts, textBlock(s.Section.Render("Experience")))
		for _, e := range c.Experience {
			body := []block{
				textBlock(s.CardTitle.Render(wrap(e.Role, w-4))),
				textBlock(s.CardBody.Render(e.Company)),
				textBlock(s.Muted.Render(e.Period)),
			}
			if len(e.Highlights) > 0 {
				body = append(body, spacer(1))
			}
			for _, h := range e.Highlights {
				body = append(body, bullet(s, h, w-4))
			}
			parts = append(parts, card(s, w, body...))
		}
	}

	if len(c.Certifications) > 0 {
		parts = append(parts, textBlock(s.Section.Render("Certifications")))
		parts = append(parts, grid(w, responsiveColumns(ctx.width), len(c.Certifications), func(i, cw int) block {
			cert := c.Certifications[i]
			return card(s, cw,
				textBlock(s.CardTitle.Render(wrap(cert.Title, cw-4))),
				textBlock(s.CardBody.Render(cert.Organization)),
				textBlock(s.Muted.Render(cert.Date)),
				spacer(1),
				linkLine(s, "Verify Certificate", cert.Verification, cw-4),
			)
		}))
	}

	return column(parts...)
}

func contactPage(ctx pageContext) block {
	c, s, w := ctx.content, ctx.styles, ctx.innerWidth()

	formWidth := min(w, 72)
	var form block
	if ctx.form != nil {
		form = ctx.form.view(s, formWidth)
	}

	return column(
		hero(s, c.Heroes.Contact, w),
		form,
		spacer(1),
		textBlock(s.Muted.Render("Or connect with me on LinkedIn")),
		linkLine(s, "Connect on LinkedIn", c.Owner.LinkedIn, formWidth),
	)
}

func projectCard(s theme.Styles, p content.Project, width int) block {
	inner := width - 4
	return card(s, width,
		textBlock(s.CardTitle.Render(wrap(p.Title, inner))),
		textBlock(s.CardBody.Render(wrap(p.Description, inner))),
		spacer(1),
		badges(s, p.Tags, inner),
		spacer(1),
		linkLine(s, "Live Demo", p.Demo, inner),
		linkLine(s, "Source", p.Source, inner),
	)
}

// card frames body in a bordered box width cells wide.
func card(s theme.Styles, width int, body ...block) block {
	inner := column(body...)
	view := s.Card.Width(width - 2).Render(inner.view)
	// One cell of border and one of padding on the left, border on top.
	return block{view: view, links: inner.shifted(2, 1)}
}

// grid lays n cards out in cols columns filling width.
func grid(width, cols, n int, build func(i, cardWidth int) block) block {
	if n == 0 {
		return block{}
	}
	if cols < 1 {
		cols = 1
	}
	cw := (width - cardGap*(cols-1)) / cols
	if cw < 12 {
		cw = 12
	}

	var rows []block
	for start := 0; start < n; start += cols {
		end := min(start+cols, n)
		cells := make([]block, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, build(i, cw))
		}
		rows = append(rows, row(cardGap, cells...))
	}
	return column(rows...)
}

func responsiveColumns(width int) int {
	switch {
	case width >= wideWidth:
		return 3
	case width >= mediumWidth:
		return 2
	default:
		return 1
	}
}

// linkLine renders "label url" and records the whole line as clickable.
func linkLine(s theme.Styles, label, url string, width int) block {
	if url == "" {
		return block{}
	}
	prefix := s.Muted.Render("↗ " + label + " ")
	room := width - lipgloss.Width(prefix)
	if room < 4 {
		prefix = ""
		room = width
	}
	view := prefix + s.Link.Render(ansi.Truncate(url, room, "…"))
	return block{
		view:  view,
		links: []linkSpot{{rect: navigation.Rect{Width: max(width, 1), Height: 1}, url: url}},
	}
}

func badges(s theme.Styles, tags []string, width int) block {
	var lines []string
	var line string
	for _, t := range tags {
		b := s.Badge.Render(t)
		switch {
		case line == "":
			line = b
		case lipgloss.Width(line)+1+lipgloss.Width(b) > width:
			lines = append(lines, line)
			line = b
		default:
			line += " " + b
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return textBlock(strings.Join(lines, "\n"))
}

func bullet(s theme.Styles, text string, width int) block {
	body := wrap(text, width-2)
	lines := strings.Split(body, "\n")
	for i, l := range lines {
		if i == 0 {
			lines[i] = "• " + l
		} else {
			lines[i] = "  " + l
		}
	}
	return textBlock(s.CardBody.Render(strings.Join(lines, "\n")))
}

func filterSummary(s theme.Styles, query string, shown, total int) block {
	if strings.TrimSpace(query) == "" {
		return block{}
	}
	if shown == 0 {
		return column(textBlock(s.Muted.Render(fmt.Sprintf("No matches for %q", query))), spacer(1))
	}
	return column(textBlock(s.Muted.Render(fmt.Sprintf("Filter %q: %d of %d", query, shown, total))), spacer(1))
}

// wrap word-wraps plain text to width cells.
func wrap(text string, width int) string {
	if width < 1 {
		width = 1
	}
	return ansi.Wrap(text, width, "")
}
