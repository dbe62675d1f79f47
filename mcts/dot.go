package mcts

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

// MaxDOTDepth bounds how many edges deep DOT() walks from the root,
// so a verbose export of a large tree doesn't produce a
// multi-megabyte graph.
const MaxDOTDepth = 4

// DOT renders the most recently completed verbose search's tree (root
// plus up to MaxDOTDepth levels of children) as Graphviz DOT source.
// Returns an empty string if the last Search call was not run with
// Config.Verbose set.
func (e *Engine) DOT() (string, error) {
	if e.lastTree == nil {
		return "", nil
	}

	graph := gographviz.NewGraph()
	if err := graph.SetName("tree"); err != nil {
		return "", err
	}
	if err := graph.SetDir(true); err != nil {
		return "", err
	}

	var rootKey InformationSet
	for key, node := range e.lastTree {
		if node.ParentKey == nil {
			rootKey = key
			break
		}
	}

	visited := make(map[InformationSet]struct{})
	e.addDOTNode(graph, rootKey, visited, 0)
	return graph.String(), nil
}

func (e *Engine) addDOTNode(graph *gographviz.Graph, key InformationSet, visited map[InformationSet]struct{}, depth int) {
	if _, seen := visited[key]; seen {
		return
	}
	visited[key] = struct{}{}

	node := e.lastTree[key]
	id := dotNodeID(key)
	label := fmt.Sprintf("\"n=%d W=%.1f\"", node.Visits, node.RewardSum)
	if node.IsTerminal() {
		label = fmt.Sprintf("\"n=%d W=%.1f (terminal)\"", node.Visits, node.RewardSum)
	}
	_ = graph.AddNode("tree", id, map[string]string{"label": label})

	if depth >= MaxDOTDepth {
		return
	}
	for move, childKey := range node.Children {
		childID := dotNodeID(childKey)
		e.addDOTNode(graph, childKey, visited, depth+1)
		_ = graph.AddEdge(id, childID, true, map[string]string{"label": fmt.Sprintf("\"%s->%d\"", move.Card, move.Slot)})
	}
}

func dotNodeID(key InformationSet) string {
	return fmt.Sprintf("\"%s\"", key.String())
}
