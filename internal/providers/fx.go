package providers

import (
	"go.uber.org/fx"

	"github.com/Candratama/invow-sub000/internal/providers/pdf"
)

var Module = fx.Module("providers",
	pdf.Module,
)
