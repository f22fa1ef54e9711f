package report

import (
	"fmt"

	"ngo-admin-system/config"
	"ngo-admin-system/internal/global/httpclient"
	"ngo-admin-system/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// GenerateReportReq 定义生成项目报告请求的结构体
type GenerateReportReq struct {
	ProjectDescription string `json:"project_description" binding:"required"` // 项目描述
	CurrentProgress    string `json:"current_progress" binding:"required"`    // 当前进展
	FutureObjectives   string `json:"future_objectives" binding:"required"`   // 后续目标
}

// chatRequest OpenAI 兼容的对话补全请求
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse OpenAI 兼容的对话补全响应
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

const systemPrompt = "You are an AI assistant tasked with generating project progress reports for NGO managers. " +
	"Based on the project description, current progress, and future objectives, create a comprehensive report."

// generate 调用大模型生成报告文本
// 失败一律映射为生成失败，不做重试；生成与否不影响任何存储路径
func generate(c *gin.Context, req GenerateReportReq) (string, error) {
	cfg := config.Get().AI
	if cfg.BaseURL == "" {
		return "", errors.New("AI 服务未配置")
	}

	userPrompt := fmt.Sprintf(
		"Project Description: %s\n\nCurrent Progress: %s\n\nFuture Objectives: %s\n\nReport:",
		req.ProjectDescription, req.CurrentProgress, req.FutureObjectives,
	)

	var result chatResponse
	resp, err := httpclient.Client.R().
		SetContext(c.Request.Context()).
		SetHeader("Authorization", "Bearer "+cfg.APIKey).
		SetBody(chatRequest{
			Model: cfg.Model,
			Messages: []chatMessage{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: userPrompt},
			},
		}).
		SetResult(&result).
		Post(cfg.BaseURL + "/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", errors.Errorf("AI 服务返回 %s", resp.Status())
	}
	if result.Error != nil {
		return "", errors.New(result.Error.Message)
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", errors.New("AI 服务返回空结果")
	}
	return result.Choices[0].Message.Content, nil
}

// GenerateProjectReport 生成项目进展报告
func GenerateProjectReport(c *gin.Context) {
	var req GenerateReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定生成报告请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	text, err := generate(c, req)
	if err != nil {
		log.Error("报告生成失败", "error", err)
		response.Fail(c, response.ErrGeneration.WithOrigin(err))
		return
	}

	log.Info("报告生成成功", "length", len(text))

	response.Success(c, map[string]interface{}{
		"report": text,
	})
}
