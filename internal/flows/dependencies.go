package flows

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/wangjing53406/navi/internal/cheat"
	"github.com/wangjing53406/navi/internal/config"
	"github.com/wangjing53406/navi/internal/domain"
	"github.com/wangjing53406/navi/internal/finder"
	"github.com/wangjing53406/navi/internal/git"
	"github.com/wangjing53406/navi/internal/paths"
	"github.com/wangjing53406/navi/internal/store"
	"github.com/wangjing53406/navi/internal/ui/style"
)

// Deps are the side effects flows need. Tests replace them.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Getenv func(string) string
	// Executable is the path used to call back into navi from finder previews.
	Executable func() (string, error)

	NewFinder  func(domain.FinderChoice, string) domain.Finder
	LoadCheats func([]string) ([]cheat.Cheat, error)
	Git        domain.GitProvider
	OpenStore  func() (domain.RepoStore, error)
	Config     domain.ConfigProvider
	CheatsDir  func() string

	HTTPGet     func(url string) ([]byte, error)
	RunShell    func(shell, command string) error
	ShellOutput func(shell, command, stdin string) (string, error)
	Prompt      func(name string) (string, error)
	OpenURL     func(url string) error
}

func DefaultDeps() Deps {
	return Deps{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Stdin:       os.Stdin,
		Getenv:      os.Getenv,
		Executable:  os.Executable,
		NewFinder:   finder.New,
		LoadCheats:  cheat.LoadDirs,
		Git:         git.NewProvider(),
		OpenStore:   openStore,
		Config:      config.NewProvider(),
		CheatsDir:   paths.CheatsDir,
		HTTPGet:     httpGet,
		RunShell:    runShell,
		ShellOutput: shellOutput,
		Prompt:      promptReader(os.Stdin, os.Stderr),
		OpenURL:     openURL,
	}
}

func openStore() (domain.RepoStore, error) {
	path := paths.DBPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	return store.New(path)
}

var httpClient = &http.Client{Timeout: 15 * time.Second}

func httpGet(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	// cheat.sh answers plain text to curl
	req.Header.Set("User-Agent", "curl/8.0 navi")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 8<<20))
}

func runShell(shell, command string) error {
	cmd := exec.Command(shell, "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func shellOutput(shell, command, stdin string) (string, error) {
	cmd := exec.Command(shell, "-c", command)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", command, err)
	}
	return string(out), nil
}

func promptReader(stdin io.Reader, stderr io.Writer) func(string) (string, error) {
	reader := bufio.NewReader(stdin)
	return func(name string) (string, error) {
		fmt.Fprintf(stderr, "%s: ", style.Variable(name))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("read value for %s: %w", name, err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
}

func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
