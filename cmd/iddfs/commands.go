package main

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/zeromicro/go-zero/core/logx"

	"iddfs-go/internal/bintree"
	"iddfs-go/internal/dupfind"
	"iddfs-go/internal/fstree"
	"iddfs-go/internal/namedtree"
	"iddfs-go/internal/progress"
	"iddfs-go/internal/report"
	"iddfs-go/internal/search"
)

const defaultXMLPath = "XML/tree.xml"

// treeSource selects where a file tree comes from.
type treeSource struct {
	dir     string
	xmlPath string
	seed    uint64
	seedSet bool
}

func addTreeSourceFlags(fs *pflag.FlagSet, src *treeSource) {
	fs.StringVarP(&src.dir, "dir", "d", "", "Search a directory on disk")
	fs.StringVar(&src.xmlPath, "xml", "", "Search a tree saved as XML")
	fs.Uint64Var(&src.seed, "seed", 0, "Seed for the generated tree (overrides config)")
}

// load returns the tree and the number of entries that could not be read.
func (src *treeSource) load(opts *options) (*fstree.Entry, int, error) {
	switch {
	case src.dir != "":
		absDirectory, err := filepath.Abs(src.dir)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to get absolute path: %w", err)
		}
		result, err := fstree.Load(absDirectory, opts.cfg.Skip)
		if err != nil {
			return nil, 0, err
		}
		for _, err := range result.Errors {
			logx.Errorf("skipped: %v", err)
		}
		return result.Root, len(result.Errors), nil

	case src.xmlPath != "":
		root, err := fstree.LoadXML(src.xmlPath)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to load tree: %w", err)
		}
		return root, 0, nil

	default:
		gen := opts.cfg.Generator
		if src.seedSet {
			gen.Seed = src.seed
		}
		root, err := fstree.Generate(gen)
		return root, 0, err
	}
}

func newGenerateCmd(opts *options) *cobra.Command {
	var (
		src         treeSource
		output      string
		materialize string
		workers     int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic file tree, print it and save it as XML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src.seedSet = cmd.Flags().Changed("seed")
			root, _, err := src.load(opts)
			if err != nil {
				return err
			}

			fmt.Println(fstree.Render(root))

			fingerprint, err := fstree.Fingerprint(root)
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\n", fingerprint)

			// Set output path - from flag, config, or default
			if output == "" {
				output = opts.cfg.OutputFile
			}
			if output == "" {
				output = defaultXMLPath
			}
			if err := fstree.SaveXML(root, output); err != nil {
				return fmt.Errorf("failed to save tree: %w", err)
			}
			fmt.Printf("Output: %s\n", output)

			if materialize != "" {
				path, err := fstree.Materialize(cmd.Context(), root, materialize, workers)
				if err != nil {
					return fmt.Errorf("failed to write tree: %w", err)
				}
				fmt.Printf("Written to: %s\n", path)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Uint64Var(&src.seed, "seed", 0, "Seed for the generated tree (overrides config)")
	flags.StringVarP(&output, "output", "o", "", "XML output path")
	flags.StringVar(&materialize, "materialize", "", "Also write the tree as real files under this directory")
	flags.IntVarP(&workers, "workers", "w", runtime.NumCPU()*2, "Number of file-writing goroutines")
	return cmd
}

func newDupesCmd(opts *options) *cobra.Command {
	var src treeSource

	cmd := &cobra.Command{
		Use:   "dupes",
		Short: "Find a pair of files with identical content",
		Long: "Find a pair of files with identical content in a directory, a saved XML tree, " +
			"or a generated tree. Exits with status 1 when a duplicate is found.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src.seedSet = cmd.Flags().Changed("seed")
			root, skipped, err := src.load(opts)
			if err != nil {
				return err
			}

			bar := progress.New()
			if opts.quiet {
				bar.Disable()
			}

			problem := dupfind.NewProblem(root)
			res := search.IterativeDeepeningSearch[*fstree.Entry, *fstree.Entry](problem, search.WithOnPass(bar.Pass))
			bar.Finish()

			pair, found := problem.Duplicate()
			fmt.Print(report.FormatDuplicate(pair, report.Summary{
				Passes:  res.Passes,
				Visited: res.Visited,
				Skipped: skipped + problem.Skipped(),
			}))

			if found {
				return errDuplicateFound
			}
			return nil
		},
	}

	addTreeSourceFlags(cmd.Flags(), &src)
	return cmd
}

func newFindCmd(opts *options) *cobra.Command {
	var src treeSource

	cmd := &cobra.Command{
		Use:   "find <label>",
		Short: "Find the path to a named node",
		Long: "Find the shortest path to a node with the given name. Without --dir or --xml " +
			"the search runs over the sample tree dir1 -> {dir2 -> {file4}, dir3 -> {file5, file6}}.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := sampleNamedTree()
			if src.dir != "" || src.xmlPath != "" {
				entry, _, err := src.load(opts)
				if err != nil {
					return err
				}
				root = toNamedTree(entry)
			}

			labels, err := namedtree.FindPath(root, args[0])
			if err != nil {
				logx.Info(err)
			}
			fmt.Println(report.FormatPath(labels))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&src.dir, "dir", "d", "", "Search a directory on disk")
	flags.StringVar(&src.xmlPath, "xml", "", "Search a tree saved as XML")
	return cmd
}

func newMemberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "member <value>...",
		Short: "Check values against the sample binary tree 1 -> {2, 3 -> {4, 5}}",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := sampleBinaryTree()
			for _, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", arg, err)
				}
				fmt.Println(report.FormatMembership(v, bintree.Contains(root, v)))
			}
			return nil
		},
	}
}

func sampleNamedTree() *namedtree.Node {
	return namedtree.New("dir1").AddChildren(
		namedtree.New("dir2").AddChild(namedtree.New("file4")),
		namedtree.New("dir3").AddChildren(namedtree.New("file5"), namedtree.New("file6")),
	)
}

func sampleBinaryTree() *bintree.Node[int] {
	return bintree.New(1).SetChildren(
		bintree.New(2),
		bintree.New(3).SetChildren(bintree.New(4), bintree.New(5)),
	)
}

func toNamedTree(e *fstree.Entry) *namedtree.Node {
	n := namedtree.New(e.Name)
	for _, c := range e.Children() {
		n.AddChild(toNamedTree(c))
	}
	return n
}
