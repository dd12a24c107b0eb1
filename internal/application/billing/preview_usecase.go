package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-engine/internal/application/dto"
	"github.com/jhoicas/invoice-engine/internal/domain"
	"github.com/jhoicas/invoice-engine/internal/domain/pricing"
	"github.com/jhoicas/invoice-engine/internal/domain/repository"
	"github.com/jhoicas/invoice-engine/pkg/logger"
	"github.com/jhoicas/invoice-engine/pkg/money"
)

// Settings parámetros del motor que vienen de configuración.
type Settings struct {
	MinQuantity decimal.Decimal
	RoundPlaces int32
	Formatter   *money.Formatter
}

// PreviewUseCase recalcula la factura (o el carrito POS) y su vista previa contable.
// No persiste nada: cada llamada es una pasada completa del motor sobre el estado recibido.
type PreviewUseCase struct {
	loader      ReferenceLoader
	productRepo repository.ProductRepository
	log         *logger.Logger
	opts        pricing.Options
	places      int32
	fmt         *money.Formatter
}

// NewPreviewUseCase construye el caso de uso.
func NewPreviewUseCase(loader ReferenceLoader, productRepo repository.ProductRepository, log *logger.Logger, s Settings) *PreviewUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if s.Formatter == nil {
		s.Formatter = money.NewFormatter("es-CO", int(s.RoundPlaces))
	}
	return &PreviewUseCase{
		loader:      loader,
		productRepo: productRepo,
		log:         log,
		opts:        pricing.Options{MinQuantity: s.MinQuantity},
		places:      s.RoundPlaces,
		fmt:         s.Formatter,
	}
}

func (uc *PreviewUseCase) compute(ctx context.Context, companyID string, in dto.PreviewRequest) (pricing.State, pricing.Result, error) {
	state, err := toState(in)
	if err != nil {
		return state, pricing.Result{}, err
	}
	ref, err := uc.loader.Load(ctx, companyID, state.CustomerID, productIDs(state.Lines))
	if err != nil {
		return state, pricing.Result{}, err
	}
	res := pricing.Compute(state, ref, uc.opts)
	uc.log.Debug().
		Str("company_id", companyID).
		Int("lines", len(state.Lines)).
		Int("entries", len(res.Postings)).
		Int("warnings", len(res.Warnings)).
		Bool("balanced", res.Balance.Balanced).
		Msg("vista previa calculada")
	if !res.Balance.Balanced {
		uc.log.Warn().
			Str("company_id", companyID).
			Str("debit", res.Balance.Debit.String()).
			Str("credit", res.Balance.Credit.String()).
			Msg("vista previa contable descuadrada")
	}
	return state, res, nil
}

// Preview calcula líneas, totales, asientos y balance.
func (uc *PreviewUseCase) Preview(ctx context.Context, companyID string, in dto.PreviewRequest) (*dto.PreviewResponse, error) {
	_, res, err := uc.compute(ctx, companyID, in)
	if err != nil {
		return nil, err
	}
	return toPreviewResponse(res, uc.fmt), nil
}

// CartPreview es Preview para el carrito del POS: la tasa de cambio es siempre 1.
func (uc *PreviewUseCase) CartPreview(ctx context.Context, companyID string, in dto.CartPreviewRequest) (*dto.PreviewResponse, error) {
	return uc.Preview(ctx, companyID, dto.PreviewRequest{
		CustomerID:          in.CustomerID,
		ExchangeRate:        decimal.NewFromInt(1),
		Lines:               in.Lines,
		AccountOverrides:    in.AccountOverrides,
		TaxAccountOverrides: in.TaxAccountOverrides,
	})
}

// Submission arma el payload para la API de creación de facturas.
// Con ready=false el cliente no debe enviarla: missing_roles indica qué cuenta falta.
func (uc *PreviewUseCase) Submission(ctx context.Context, companyID string, in dto.PreviewRequest) (*dto.SubmissionResponse, error) {
	state, res, err := uc.compute(ctx, companyID, in)
	if err != nil {
		return nil, err
	}
	sub := pricing.BuildSubmission(state, res, uc.places)
	if !sub.Ready {
		uc.log.Info().
			Str("company_id", companyID).
			Interface("missing_roles", sub.MissingRoles).
			Msg("factura no lista para envío")
	}
	return toSubmissionResponse(state.CustomerID, sub, res.Warnings, uc.fmt), nil
}

// NewLine arma la línea inicial al agregar un producto: precio normalizado a base e IVA del producto.
func (uc *PreviewUseCase) NewLine(ctx context.Context, companyID string, in dto.NewLineRequest) (*dto.LineRequest, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, companyID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	ref, err := uc.loader.Load(ctx, companyID, "", nil)
	if err != nil {
		return nil, err
	}
	qty := in.Quantity
	if !qty.IsPositive() {
		qty = decimal.NewFromInt(1)
	}
	line := pricing.NewLineFromProduct(uuid.New().String(), *product, ref, qty)
	out := toLineRequest(line)
	return &out, nil
}
