// Package tools links every tool widget into the renderer registry.
package tools

import (
	_ "github.com/ryan-rushton/omni/internal/tools/generic"
	_ "github.com/ryan-rushton/omni/internal/tools/textcase"
	_ "github.com/ryan-rushton/omni/internal/tools/textclean"
	_ "github.com/ryan-rushton/omni/internal/tools/wordcount"
)
