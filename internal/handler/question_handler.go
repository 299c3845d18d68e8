package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-questions/internal/domain/entity"
	"github.com/yourusername/trivia-questions/internal/handler/dto"
	"github.com/yourusername/trivia-questions/internal/handler/response"
	apperrors "github.com/yourusername/trivia-questions/internal/pkg/errors"
	"github.com/yourusername/trivia-questions/internal/pkg/pagination"
	"github.com/yourusername/trivia-questions/internal/service"
)

// exportHeaders - заголовки колонок выгрузки банка вопросов
var exportHeaders = []string{"ID", "Question", "Answer", "Category", "Difficulty"}

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService, categoryService *service.CategoryService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
	}
}

// pageFromQuery читает ?page=N. Отсутствующее, нечисловое или < 1 значение равно 1.
func pageFromQuery(c *gin.Context) pagination.Page {
	return pagination.New(pagination.ParsePage(c.Query("page")))
}

// bindJSON разбирает тело запроса. Любая ошибка разбора или валидации - ErrBadRequest.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err))
		return false
	}
	return true
}

// ListQuestions возвращает страницу всех вопросов и все категории
// GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	result, err := h.questionService.ListQuestions(pageFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	categories, err := h.categoryService.ListCategories()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"questions":        dto.NewQuestionListResponse(result.Questions),
		"total_questions":  result.Total,
		"current_category": nil,
		"categories":       dto.NewCategoryMap(categories),
	})
}

// CreateQuestion создает новый вопрос
// POST /questions?page=N
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if !bindJSON(c, &req) {
		return
	}

	question := req.ToEntity()
	result, err := h.questionService.CreateQuestion(question, pageFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"created":         question.ID,
		"questions":       dto.NewQuestionListResponse(result.Questions),
		"total_questions": result.Total,
	})
}

// DeleteQuestion удаляет вопрос по ID
// DELETE /questions/:id?page=N
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	result, err := h.questionService.DeleteQuestion(questionID, pageFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"deleted":         questionID,
		"questions":       dto.NewQuestionListResponse(result.Questions),
		"total_questions": result.Total,
	})
}

// SearchQuestions ищет вопросы по подстроке без учета регистра
// POST /questions/search?page=N
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req dto.SearchQuestionsRequest
	if !bindJSON(c, &req) {
		return
	}

	term := req.Term()
	result, err := h.questionService.SearchQuestions(term, pageFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"questions":       dto.NewQuestionListResponse(result.Questions),
		"search_term":     term,
		"total_questions": result.Total,
	})
}

// ExportQuestions выгружает весь банк вопросов в CSV или XLSX
// GET /questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		response.Error(c, fmt.Errorf("%w: unsupported export format %q", apperrors.ErrBadRequest, format))
		return
	}

	questions, err := h.questionService.ExportQuestions()
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("trivia_questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, filename)
	default:
		h.exportCSV(c, questions, filename)
	}
}

// exportRow возвращает одну строку выгрузки
func exportRow(q *entity.Question) []string {
	return []string{
		strconv.FormatUint(uint64(q.ID), 10),
		sanitizeForExcel(q.Text),
		sanitizeForExcel(q.Answer),
		strconv.FormatUint(uint64(q.CategoryID), 10),
		strconv.Itoa(q.Difficulty),
	}
}

// exportCSV выгружает вопросы в CSV с правильным экранированием спецсимволов
func (h *QuestionHandler) exportCSV(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	writer.Write(exportHeaders)
	for i := range questions {
		writer.Write(exportRow(&questions[i]))
	}
	writer.Flush()

	if err := writer.Error(); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи CSV: %v", err)
	}
}

// exportXLSX выгружает вопросы в Excel с использованием StreamWriter
func (h *QuestionHandler) exportXLSX(c *gin.Context, questions []entity.Question, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		response.Error(c, fmt.Errorf("create xlsx stream writer: %w", err))
		return
	}

	headers := make([]interface{}, len(exportHeaders))
	for i, name := range exportHeaders {
		headers[i] = name
	}
	if err := sw.SetRow("A1", headers); err != nil {
		response.Error(c, fmt.Errorf("write xlsx headers: %w", err))
		return
	}

	for i := range questions {
		q := &questions[i]
		rowNum := i + 2 // 1 - заголовки
		row := []interface{}{q.ID, sanitizeForExcel(q.Text), sanitizeForExcel(q.Answer), q.CategoryID, q.Difficulty}
		if err := sw.SetRow(fmt.Sprintf("A%d", rowNum), row); err != nil {
			response.Error(c, fmt.Errorf("write xlsx row %d: %w", rowNum, err))
			return
		}
	}

	if err := sw.Flush(); err != nil {
		response.Error(c, fmt.Errorf("flush xlsx: %w", err))
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[QuestionHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
