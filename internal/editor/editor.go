package editor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Paintersrp/nb/internal/config"
	"github.com/Paintersrp/nb/internal/pathutil"
)

// Launcher builds and runs editor commands for notes inside one directory.
type Launcher struct {
	editor   string
	args     string
	template config.CommandTemplate
	hooks    config.HookConfig
	dir      string
	goos     string
}

func New(cfg *config.Config) *Launcher {
	return &Launcher{
		editor:   strings.TrimSpace(cfg.Editor),
		args:     cfg.EditorArgs,
		template: cfg.EditorTemplate,
		hooks:    cfg.Hooks,
		dir:      cfg.NotesDir(),
		goos:     runtime.GOOS,
	}
}

// Launch is a prepared editor command. Wait is false for editors that detach
// from the terminal, e.g. GUI editors.
type Launch struct {
	Cmd  *exec.Cmd
	Wait bool
}

type editorCommand struct {
	command string
	args    []string
	wait    bool
	silence bool
}

type placeholders struct {
	File     string
	Dir      string
	Relative string
	Filename string
	Editor   string
	BaseCmd  string
}

// Command returns the command that opens path without starting it.
func (l *Launcher) Command(path string) (*exec.Cmd, error) {
	launch, err := l.Prepare(path)
	if err != nil {
		return nil, err
	}
	return launch.Cmd, nil
}

func (l *Launcher) Prepare(path string) (*Launch, error) {
	base, baseErr := l.baseCommand(path)

	if strings.TrimSpace(l.template.Exec) != "" {
		wrapped, err := applyTemplate(l.template, l.placeholders(path, base), base)
		if err != nil {
			return nil, err
		}
		return wrapped.launch(), nil
	}

	if baseErr != nil {
		return nil, baseErr
	}
	return base.launch(), nil
}

// Open runs the editor for path with the open hooks around it and blocks
// until a waiting editor exits. Stdio is attached to the current terminal.
func (l *Launcher) Open(path string) error {
	launch, err := l.Prepare(path)
	if err != nil {
		return err
	}

	if err := l.PreOpen(path); err != nil {
		return err
	}

	cmd := launch.Cmd
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if launch.Wait {
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("editor %q failed: %w", cmd.Path, err)
		}
	} else {
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("editor %q failed to start: %w", cmd.Path, err)
		}
		if err := cmd.Process.Release(); err != nil {
			return fmt.Errorf("editor %q release failed: %w", cmd.Path, err)
		}
	}

	return l.PostOpen(path)
}

func (cmd *editorCommand) launch() *Launch {
	c := exec.Command(cmd.command, cmd.args...)
	if cmd.silence {
		c.Stdout = io.Discard
		c.Stderr = io.Discard
	}
	return &Launch{Cmd: c, Wait: cmd.wait}
}

func (l *Launcher) baseCommand(path string) (*editorCommand, error) {
	switch l.editor {
	case "nvim", "vim", "vi", "nano", "emacs", "hx", "micro":
		args := strings.Fields(l.args)
		args = append(args, path)
		return &editorCommand{command: l.editor, args: args, wait: true}, nil
	case "vscode", "code":
		return l.vscodeCommand(path)
	case "custom":
		return nil, fmt.Errorf("custom editor requires an editor_template command")
	case "":
		return nil, fmt.Errorf("editor not configured")
	default:
		return nil, fmt.Errorf("unsupported editor: %s", l.editor)
	}
}

func (l *Launcher) vscodeCommand(path string) (*editorCommand, error) {
	switch l.goos {
	case "darwin":
		return &editorCommand{command: "open", args: []string{"-n", "-b", "com.microsoft.VSCode", "--args", path}, silence: true}, nil
	case "linux":
		return &editorCommand{command: "code", args: []string{path}, silence: true}, nil
	case "windows":
		return &editorCommand{command: "cmd", args: []string{"/c", "code", path}, silence: true}, nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", l.goos)
	}
}

func (l *Launcher) placeholders(path string, base *editorCommand) placeholders {
	relative, err := pathutil.Relative(l.dir, path)
	if err != nil {
		relative = path
	}

	p := placeholders{
		File:     path,
		Dir:      l.dir,
		Relative: relative,
		Filename: filepath.Base(path),
		Editor:   l.editor,
		BaseCmd:  l.editor,
	}
	if base != nil && base.command != "" {
		p.BaseCmd = base.command
	}
	return p
}

func applyTemplate(template config.CommandTemplate, p placeholders, base *editorCommand) (*editorCommand, error) {
	execName := strings.TrimSpace(p.expand(template.Exec))
	if execName == "" {
		return nil, fmt.Errorf("editor_template.exec must not be empty")
	}

	wait := true
	silence := false
	if base != nil {
		wait = base.wait
		silence = base.silence
	}
	if template.Wait != nil {
		wait = *template.Wait
	}
	if template.Silence != nil {
		silence = *template.Silence
	}

	return &editorCommand{
		command: execName,
		args:    expandTemplateArgs(template.Args, p, base),
		wait:    wait,
		silence: silence,
	}, nil
}

// expandTemplateArgs splices the base editor arguments in place of a bare
// {args} token and joins them into any token that embeds {args}.
func expandTemplateArgs(raw []string, p placeholders, base *editorCommand) []string {
	if len(raw) == 0 {
		return nil
	}

	var baseArgs []string
	if base != nil {
		baseArgs = base.args
	}

	args := make([]string, 0, len(raw))
	for _, token := range raw {
		if strings.TrimSpace(token) == "{args}" {
			args = append(args, baseArgs...)
			continue
		}

		expanded := p.expand(token)
		if strings.Contains(expanded, "{args}") {
			expanded = strings.ReplaceAll(expanded, "{args}", strings.Join(baseArgs, " "))
		}
		args = append(args, expanded)
	}

	return args
}

func (p placeholders) expand(value string) string {
	r := strings.NewReplacer(
		"{file}", p.File,
		"{dir}", p.Dir,
		"{relative}", p.Relative,
		"{filename}", p.Filename,
		"{cmd}", p.BaseCmd,
		"{editor}", p.Editor,
	)
	return r.Replace(value)
}
