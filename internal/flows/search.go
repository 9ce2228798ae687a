package flows

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/wangjing53406/navi/internal/cheat"
	"github.com/wangjing53406/navi/internal/domain"
	"github.com/wangjing53406/navi/internal/log"
)

const defaultSearchURL = "https://cheat.sh/~%s"

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// Search fetches cheats for query from cfg.SearchURL and lets the user pick
// one of them.
func (f *Flows) Search(query string, cfg domain.Config) error {
	target := searchURL(cfg.SearchURL, query)
	log.Debug("flows: searching %s", target)

	body, err := f.deps.HTTPGet(target)
	if err != nil {
		return err
	}

	text := ansiPattern.ReplaceAllString(string(body), "")
	cheats, err := cheat.Parse(strings.NewReader("% "+query+"\n\n"+text), target)
	if err != nil {
		return err
	}
	if len(cheats) == 0 {
		return fmt.Errorf("no online cheatsheets found for %s", query)
	}

	return f.run(cheats, domain.VariantCore(), cfg, true, nil)
}

// searchURL substitutes the escaped query for %s, or appends it when the
// template has no placeholder.
func searchURL(template, query string) string {
	if template == "" {
		template = defaultSearchURL
	}
	escaped := url.PathEscape(query)
	if strings.Contains(template, "%s") {
		return strings.Replace(template, "%s", escaped, 1)
	}
	return template + escaped
}
