package cli

import (
	"github.com/wangjing53406/navi/internal/dispatchers"
	"github.com/wangjing53406/navi/internal/domain"
	"github.com/wangjing53406/navi/internal/usage"
)

// BuildConfig merges command line flags over the config file (which already
// carries the NAVI_* environment overrides).
func BuildConfig(cmd domain.Command, flags *dispatchers.ParsedFlags, provider domain.ConfigProvider) (domain.Config, error) {
	setting := func(flag, key string) string {
		if v, ok := flags.Lookup(flag); ok {
			return v
		}
		v, _ := provider.Get(key)
		return v
	}

	finderName := setting("--finder", "finder")
	if finderName == "" {
		finderName = string(domain.FinderFzf)
	}
	finder, err := domain.ParseFinderChoice(finderName)
	if err != nil {
		return domain.Config{}, usage.InvalidFinder(finderName)
	}

	shell, _ := provider.Get("shell")
	searchURL, _ := provider.Get("search_url")
	featuredURL, _ := provider.Get("featured_repos_url")

	return domain.Config{
		Cmd:          cmd,
		Finder:       finder,
		Path:         setting("--path", "cheats_path"),
		Print:        flags.Has("--print"),
		Shell:        shell,
		FzfOverrides: setting("--fzf-overrides", "fzf_overrides"),
		SearchURL:    searchURL,
		FeaturedURL:  featuredURL,
	}, nil
}
