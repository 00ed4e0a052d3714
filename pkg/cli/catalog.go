package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/mosip/injitest/pkg/executor"
	"github.com/mosip/injitest/pkg/locator"
	"github.com/mosip/injitest/pkg/page"
)

var scenariosCommand = &cli.Command{
	Name:  "scenarios",
	Usage: "List built-in scenarios",
	Action: func(c *cli.Context) error {
		tw := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tSTART\tSTEPS\tDESCRIPTION")
		for _, sc := range executor.Scenarios() {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", sc.Name, sc.Start, len(sc.Steps), sc.Description)
		}
		return tw.Flush()
	},
}

var locatorsCommand = &cli.Command{
	Name:  "locators",
	Usage: "Print every screen's element selectors as YAML",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "platform",
			Usage: "Only show selectors for this platform (android, ios)",
		},
	},
	Action: func(c *cli.Context) error {
		// The command's own --platform shadows the global one.
		var platform locator.Platform
		if name := c.String("platform"); name != "" {
			p, err := locator.ParsePlatform(name)
			if err != nil {
				return err
			}
			platform = p
		}

		doc, err := catalogYAML(platform)
		if err != nil {
			return err
		}
		_, err = c.App.Writer.Write(doc)
		return err
	},
}

// catalogYAML renders the element catalog in screen order. An empty
// platform includes every platform's selector.
func catalogYAML(platform locator.Platform) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, screen := range page.Screens() {
		elements := &yaml.Node{Kind: yaml.MappingNode}
		for _, el := range page.Elements(screen) {
			var value interface{} = el
			if platform != "" {
				loc, err := el.For(platform)
				if err != nil {
					continue
				}
				value = loc
			}
			var node yaml.Node
			if err := node.Encode(value); err != nil {
				return nil, fmt.Errorf("encode %s: %w", el.Name, err)
			}
			elements.Content = append(elements.Content, scalar(el.Name), &node)
		}
		root.Content = append(root.Content, scalar(screen.String()), elements)
	}
	return yaml.Marshal(root)
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: s}
}

var graphCommand = &cli.Command{
	Name:  "graph",
	Usage: "Print the screen navigation graph",
	Action: func(c *cli.Context) error {
		tw := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "FROM\tACTION\tVIA\tTO")
		for _, t := range page.Transitions {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.From, t.Action, t.Via.Name, t.To)
		}
		return tw.Flush()
	},
}
