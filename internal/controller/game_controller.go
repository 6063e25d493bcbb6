package controller

import (
	"errors"

	"github.com/annakaza/atomic-chess/internal/model"
	"github.com/annakaza/atomic-chess/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type moveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch game state",
		})
	}

	return c.JSON(gameState)
}

// MakeMove is the REST entry point for moves; coordinates arrive in
// algebraic notation and rejections come back as 4xx with a reason code.
func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	outcome, err := gc.gameService.HandleMove(gameID, req.From, req.To)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
			"code":  ReasonCode(err),
		})
	}

	return c.JSON(outcome)
}

// ReasonCode maps an engine rejection to its stable wire identifier.
func ReasonCode(err error) string {
	switch {
	case errors.Is(err, model.ErrGameOver):
		return "GAME_OVER"
	case errors.Is(err, model.ErrNoPieceOrWrongColor):
		return "NO_PIECE_OR_WRONG_COLOR"
	case errors.Is(err, model.ErrIllegalGeometry):
		return "ILLEGAL_GEOMETRY"
	case errors.Is(err, model.ErrFriendlyCapture):
		return "FRIENDLY_CAPTURE"
	case errors.Is(err, model.ErrKingCannotCapture):
		return "KING_CANNOT_CAPTURE"
	case errors.Is(err, model.ErrOwnKingInBlast):
		return "OWN_KING_IN_BLAST"
	case errors.Is(err, model.ErrInvalidNotation):
		return "INVALID_NOTATION"
	}
	return "UNKNOWN"
}
